package search

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/kv"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
)

type fakeAPI struct {
	mu      sync.Mutex
	queries []string
	hits    map[string][]models.SearchResult
	errs    map[string]error
	block   map[string]chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits:  make(map[string][]models.SearchResult),
		errs:  make(map[string]error),
		block: make(map[string]chan struct{}),
	}
}

func (f *fakeAPI) Get(_ context.Context, _ string, query url.Values, out any) (*types.Envelope, error) {
	q := query.Get("q")
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.block[q]
	err := f.errs[q]
	hits := f.hits[q]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if target, ok := out.(*[]models.SearchResult); ok {
		*target = hits
	}
	return &types.Envelope{Success: true}, nil
}

func (f *fakeAPI) dispatched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

func newTestEngine(t *testing.T, api *fakeAPI, debounce time.Duration) *Engine {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test"})
	history := NewHistory(kv.NewMemory(), logg, DefaultHistoryLimit)
	return NewEngine(api, history, logg, WithDebounce(debounce))
}

func TestSearchDebounceCollapsesRapidKeystrokes(t *testing.T) {
	api := newFakeAPI()
	api.hits["abc"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "abc board"}}
	e := newTestEngine(t, api, 30*time.Millisecond)
	ctx := context.Background()

	for _, q := range []string{"a", "ab", "abc"} {
		if err := e.Search(ctx, q); err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
	}
	time.Sleep(150 * time.Millisecond)

	dispatched := api.dispatched()
	if len(dispatched) != 1 || dispatched[0] != "abc" {
		t.Fatalf("expected exactly one dispatch for the final query, got %v", dispatched)
	}
	results := e.Results()
	if len(results) != 1 || results[0].Title != "abc board" {
		t.Fatalf("unexpected results: %v", results)
	}
}

func TestSearchEmptyQueryClearsSynchronously(t *testing.T) {
	api := newFakeAPI()
	api.hits["alpha"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "alpha"}}
	e := newTestEngine(t, api, 10*time.Millisecond)
	ctx := context.Background()

	if _, err := e.SearchNow(ctx, "alpha"); err != nil {
		t.Fatalf("seeding results: %v", err)
	}
	if len(e.Results()) != 1 {
		t.Fatalf("expected seeded results")
	}

	if err := e.Search(ctx, "   "); err != nil {
		t.Fatalf("blank search: %v", err)
	}
	if got := e.Results(); got != nil {
		t.Fatalf("blank query must clear results immediately, got %v", got)
	}
}

func TestSearchEmptyQueryCancelsPendingDispatch(t *testing.T) {
	api := newFakeAPI()
	e := newTestEngine(t, api, 30*time.Millisecond)
	ctx := context.Background()

	if err := e.Search(ctx, "alpha"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if err := e.Search(ctx, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	if dispatched := api.dispatched(); len(dispatched) != 0 {
		t.Fatalf("cleared query must never dispatch, got %v", dispatched)
	}
}

func TestSearchRejectsInvalidQueryBeforeDispatch(t *testing.T) {
	api := newFakeAPI()
	e := newTestEngine(t, api, 10*time.Millisecond)

	err := e.Search(context.Background(), "!!!")
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected %s but got %v", pkgerrors.CodeValidation, err)
	}

	time.Sleep(50 * time.Millisecond)
	if dispatched := api.dispatched(); len(dispatched) != 0 {
		t.Fatalf("invalid query must never dispatch, got %v", dispatched)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	api := newFakeAPI()
	gate := make(chan struct{})
	api.block["slow"] = gate
	api.hits["slow"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "stale"}}
	api.hits["fast"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "fresh"}}
	e := newTestEngine(t, api, 5*time.Millisecond)
	ctx := context.Background()

	if err := e.Search(ctx, "slow"); err != nil {
		t.Fatalf("search: %v", err)
	}
	time.Sleep(50 * time.Millisecond) // slow request is now in flight, blocked

	hits, err := e.SearchNow(ctx, "fast")
	if err != nil {
		t.Fatalf("fast search: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "fresh" {
		t.Fatalf("unexpected fast hits: %v", hits)
	}

	close(gate)
	time.Sleep(50 * time.Millisecond)

	results := e.Results()
	if len(results) != 1 || results[0].Title != "fresh" {
		t.Fatalf("superseded response must not replace newer results, got %v", results)
	}
}

func TestSearchNowArrangesResultsInGroupOrder(t *testing.T) {
	api := newFakeAPI()
	api.hits["q"] = []models.SearchResult{
		{Type: enums.ResultTypeBlog, Title: "post"},
		{Type: enums.ResultTypeUser, Title: "mina"},
		{Type: enums.ResultTypeProject, Title: "feed"},
	}
	e := newTestEngine(t, api, 10*time.Millisecond)

	hits, err := e.SearchNow(context.Background(), "q")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	wantTitles := []string{"feed", "mina", "post"}
	for i, title := range wantTitles {
		if hits[i].Title != title {
			t.Fatalf("position %d: expected %q but got %q", i, title, hits[i].Title)
		}
	}
}

func TestDispatchErrorClearsResultsAndPropagates(t *testing.T) {
	api := newFakeAPI()
	api.hits["ok"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "ok"}}
	api.errs["bad"] = pkgerrors.New(pkgerrors.CodeServer, "server error occurred")
	e := newTestEngine(t, api, 10*time.Millisecond)
	ctx := context.Background()

	if _, err := e.SearchNow(ctx, "ok"); err != nil {
		t.Fatalf("seeding results: %v", err)
	}
	if _, err := e.SearchNow(ctx, "bad"); err == nil {
		t.Fatalf("expected the request error to propagate")
	}
	if got := e.Results(); got != nil {
		t.Fatalf("failed search should clear results, got %v", got)
	}
}

func TestSuccessfulDispatchRecordsHistory(t *testing.T) {
	api := newFakeAPI()
	api.hits["alpha"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "alpha"}}
	api.errs["bad"] = pkgerrors.New(pkgerrors.CodeServer, "server error occurred")
	e := newTestEngine(t, api, 10*time.Millisecond)
	ctx := context.Background()

	if _, err := e.SearchNow(ctx, "alpha"); err != nil {
		t.Fatalf("search: %v", err)
	}
	_, _ = e.SearchNow(ctx, "bad")

	entries := e.history.List(ctx)
	if len(entries) != 1 || entries[0].Query != "alpha" {
		t.Fatalf("only successful searches belong in history, got %v", entries)
	}
}

func TestOnResultsListenerSeesUpdatesAndClears(t *testing.T) {
	api := newFakeAPI()
	api.hits["alpha"] = []models.SearchResult{{Type: enums.ResultTypeProject, Title: "alpha"}}
	e := newTestEngine(t, api, 10*time.Millisecond)
	ctx := context.Background()

	var mu sync.Mutex
	var seen [][]models.SearchResult
	e.OnResults(func(hits []models.SearchResult) {
		mu.Lock()
		seen = append(seen, hits)
		mu.Unlock()
	})

	if _, err := e.SearchNow(ctx, "alpha"); err != nil {
		t.Fatalf("search: %v", err)
	}
	e.Clear()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications but got %d", len(seen))
	}
	if len(seen[0]) != 1 || seen[0][0].Title != "alpha" {
		t.Fatalf("first notification should carry the hits, got %v", seen[0])
	}
	if seen[1] != nil {
		t.Fatalf("clear notification should carry nil, got %v", seen[1])
	}
}
