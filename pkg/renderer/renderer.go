package renderer

import (
	"context"
	"log"
	"sync"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/view"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/container.go -pkg mocks -skip-ensure -fmt goimports . Container

// Fetcher retrieves headlines from the headlines API
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Headline, error)
}

// Container receives the rendered content, replacing whatever it held before
type Container interface {
	Replace(nodes []view.Node)
}

// State of the container content
type State string

// enum of states
const (
	StateLoading State = "loading" // initial markup, nothing rendered yet
	StateLoaded  State = "loaded"  // cards or the "no headlines" message
	StateFailed  State = "failed"  // fallback message
)

// Renderer fetches headlines once and renders them into the container
type Renderer struct {
	fetcher   Fetcher
	container Container

	once  sync.Once
	lock  sync.Mutex
	state State
	count int
}

// New makes a renderer in the loading state
func New(fetcher Fetcher, container Container) *Renderer {
	return &Renderer{fetcher: fetcher, container: container, state: StateLoading}
}

// Initialize runs FetchAndDisplay, only the first call does anything.
// The host calls it once the page document is ready.
func (r *Renderer) Initialize(ctx context.Context) {
	r.once.Do(func() {
		r.FetchAndDisplay(ctx)
	})
}

// FetchAndDisplay fetches headlines and renders them. Any failure replaces the container
// content with the fallback message, nothing is returned and no retry is made.
func (r *Renderer) FetchAndDisplay(ctx context.Context) {
	headlines, err := r.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[WARN] failed to fetch headlines: %v", err)
		r.container.Replace(view.Failure())
		r.setState(StateFailed, 0)
		return
	}
	r.Render(headlines)
}

// Render replaces the container content with a card per headline,
// or with the "no headlines" message if there are none
func (r *Renderer) Render(headlines []domain.Headline) {
	r.container.Replace(view.Describe(headlines))
	r.setState(StateLoaded, len(headlines))
	log.Printf("[DEBUG] rendered %d headlines", len(headlines))
}

// State returns the current state and the number of rendered cards
func (r *Renderer) State() (state State, count int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.state, r.count
}

func (r *Renderer) setState(state State, count int) {
	r.lock.Lock()
	r.state, r.count = state, count
	r.lock.Unlock()
}
