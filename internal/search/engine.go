// Package search implements the client search engine: debounced dispatch of
// keystrokes against the unified search endpoint, discarding of superseded
// responses, ranking and highlighting of hits, and a locally persisted
// history with derived analytics.
package search

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/flowpms/flowpms-go/pkg/apiclient"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/metrics"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
)

// DefaultDebounce is the quiet period a keystroke must survive before its
// query is dispatched.
const DefaultDebounce = 300 * time.Millisecond

type apiDoer interface {
	Get(ctx context.Context, path string, query url.Values, out any) (*types.Envelope, error)
}

// Engine drives the incremental search box. At most one request is in the
// debounce window at a time; a newer keystroke cancels the pending one, and
// a response that arrives after a newer dispatch is dropped.
type Engine struct {
	api      apiDoer
	history  *History
	logg     *logger.Logger
	metrics  *metrics.SearchMetrics
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	results    []models.SearchResult
	listeners  []func([]models.SearchResult)
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithDebounce overrides the debounce window. Tests shrink it.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.debounce = d
		}
	}
}

// WithMetrics attaches search metrics.
func WithMetrics(m *metrics.SearchMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine builds the engine over the shared API adapter and history store.
func NewEngine(api apiDoer, history *History, logg *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		api:      api,
		history:  history,
		logg:     logg,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnResults registers a listener invoked with a snapshot after every result
// change, including clears.
func (e *Engine) OnResults(fn func([]models.SearchResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Results returns a snapshot of the current hits in display order.
func (e *Engine) Results() []models.SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.results)
}

// Search feeds one keystroke's worth of query text into the engine. An
// empty or whitespace-only query clears the results synchronously and
// cancels any pending or in-flight work. An invalid query is rejected
// before any network activity. A valid query is dispatched only after the
// debounce window passes with no newer call.
func (e *Engine) Search(ctx context.Context, query string) error {
	if isBlank(query) {
		e.Clear()
		return nil
	}
	if result := ValidateQuery(query); !result.IsValid {
		return pkgerrors.New(pkgerrors.CodeValidation, result.Errors[0]).
			WithDetails(result.Errors)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelPendingLocked()
	e.timer = time.AfterFunc(e.debounce, func() {
		e.dispatch(ctx, query)
	})
	return nil
}

// SearchNow bypasses the debounce window, for explicit form submits. The
// stale-response rule still applies against concurrent debounced work.
func (e *Engine) SearchNow(ctx context.Context, query string) ([]models.SearchResult, error) {
	if isBlank(query) {
		e.Clear()
		return nil, nil
	}
	if result := ValidateQuery(query); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, result.Errors[0]).
			WithDetails(result.Errors)
	}

	e.mu.Lock()
	e.cancelPendingLocked()
	e.mu.Unlock()
	return e.dispatch(ctx, query)
}

// Clear drops the current results and invalidates pending and in-flight
// requests so nothing resurrects them.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.generation++
	e.results = nil
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

func (e *Engine) dispatch(ctx context.Context, query string) ([]models.SearchResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	e.metrics.IncDispatched("all")
	ctx = e.logg.WithQuery(ctx, query)

	var hits []models.SearchResult
	if _, err := e.api.Get(ctx, apiclient.EndpointSearch, url.Values{"q": {query}}, &hits); err != nil {
		e.logg.Error(ctx, "search request failed", err)
		e.publish(gen, nil)
		return nil, err
	}

	arranged := Arrange(hits)
	if !e.publish(gen, arranged) {
		return nil, nil
	}
	if e.history != nil {
		e.history.Add(ctx, query)
	}
	return arranged, nil
}

// publish installs the results unless a newer generation superseded this
// one. It reports whether the results were accepted.
func (e *Engine) publish(gen uint64, results []models.SearchResult) bool {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.metrics.IncStaleDropped()
		return false
	}
	e.results = results
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot(results))
	}
	return true
}

func (e *Engine) cancelPendingLocked() {
	if e.timer != nil && e.timer.Stop() {
		e.metrics.IncCancelled()
	}
	e.timer = nil
}

func isBlank(query string) bool {
	for _, r := range query {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func snapshot(results []models.SearchResult) []models.SearchResult {
	if results == nil {
		return nil
	}
	out := make([]models.SearchResult, len(results))
	copy(out, results)
	return out
}
