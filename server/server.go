package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/headlines/pkg/renderer"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/page.go -pkg mocks -skip-ensure -fmt goimports . Page
//go:generate moq -out mocks/status.go -pkg mocks -skip-ensure -fmt goimports . StatusProvider

//go:embed web/index.html
var defaultPage []byte

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	page    Page
	status  StatusProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Page is the live host page with the headlines container
type Page interface {
	Render(w io.Writer) error
	ContainerHTML() (string, error)
}

// StatusProvider reports the state of the headlines container
type StatusProvider interface {
	State() (state renderer.State, count int)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// HostPage returns the host page markup, read from path or the embedded default if path is empty
func HostPage(path string) ([]byte, error) {
	if path == "" {
		return defaultPage, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("read page template: %w", err)
	}
	return data, nil
}

// New initializes a new server instance
func New(cfg ConfigProvider, page Page, status StatusProvider, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		page:    page,
		status:  status,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("headlines", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /headlines", s.headlinesHandler)
	s.router.HandleFunc("GET /{$}", s.pageHandler)
}

// pageHandler serves the whole host page with the current container content
func (s *Server) pageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Render(w); err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
	}
}

// headlinesHandler serves the container content only
func (s *Server) headlinesHandler(w http.ResponseWriter, r *http.Request) {
	inner, err := s.page.ContainerHTML()
	if err != nil {
		log.Printf("[ERROR] failed to render headlines: %v", err)
		renderError(w, r, fmt.Errorf("failed to render headlines"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, inner); err != nil {
		log.Printf("[WARN] failed to write headlines: %v", err)
	}
}

// statusHandler returns server status along with the container state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	state, count := s.status.State()
	status := map[string]any{
		"status":    "ok",
		"state":     state,
		"headlines": count,
		"version":   s.version,
		"time":      time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
