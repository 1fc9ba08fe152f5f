package search

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
)

func TestScopedSearchValidatesQuery(t *testing.T) {
	api := newFakeAPI()
	e := newTestEngine(t, api, 10*time.Millisecond)

	if _, err := e.Projects(context.Background(), "   "); err == nil {
		t.Fatalf("expected a validation error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected %s but got %v", pkgerrors.CodeValidation, err)
	}
	if dispatched := api.dispatched(); len(dispatched) != 0 {
		t.Fatalf("invalid scoped query must never dispatch, got %v", dispatched)
	}
}

func TestSuggestionsFailOpen(t *testing.T) {
	api := newFakeAPI()
	api.errs["pre"] = pkgerrors.New(pkgerrors.CodeServer, "server error occurred")
	e := newTestEngine(t, api, 10*time.Millisecond)

	if got := e.Suggestions(context.Background(), "pre"); got != nil {
		t.Fatalf("suggestion failures should yield nothing, got %v", got)
	}
	if got := e.Suggestions(context.Background(), "  "); got != nil {
		t.Fatalf("blank prefix should yield nothing, got %v", got)
	}
}
