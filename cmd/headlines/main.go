package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/headlines/pkg/config"
	"github.com/umputun/headlines/pkg/feed"
	"github.com/umputun/headlines/pkg/renderer"
	"github.com/umputun/headlines/pkg/view"
	"github.com/umputun/headlines/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	API    string `long:"api" env:"API_URL" description:"headlines api url, overrides config"`
	Export string `long:"export" description:"render the page once into this file and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)

	log.Printf("[INFO] starting headlines version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads the page and config, then either serves the page or exports it once.
// The renderer is initialized as soon as the page document is ready.
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.API != "" {
		cfg.API.URL = opts.API
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid api url: %w", err)
		}
	}

	pageData, err := server.HostPage(cfg.Page.Template)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	page, err := view.NewPage(bytes.NewReader(pageData))
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}

	fetcher, err := feed.NewHTTPFetcher(cfg.API.URL, cfg.API.Timeout)
	if err != nil {
		return fmt.Errorf("failed to make fetcher: %w", err)
	}
	rend := renderer.New(fetcher, page)
	log.Printf("[INFO] headlines api %s", fetcher.Endpoint())

	if opts.Export != "" {
		return export(ctx, rend, page, opts.Export)
	}

	srv := server.New(cfg, page, rend, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		rend.Initialize(gctx)
		state, count := rend.State()
		log.Printf("[INFO] headlines %s, %d cards", state, count)
		return nil
	})
	return g.Wait()
}

// export renders the page once and writes it to the file
func export(ctx context.Context, rend *renderer.Renderer, page *view.Page, path string) error {
	rend.Initialize(ctx)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // exported page is public html
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	state, count := rend.State()
	log.Printf("[INFO] page exported to %s, headlines %s, %d cards", path, state, count)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
