package projects

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/internal/notify"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
)

type fakeDoer struct {
	mu    sync.Mutex
	calls []string
	data  any
	err   error
}

func (f *fakeDoer) record(method, path string, query url.Values, out any) (*types.Envelope, error) {
	f.mu.Lock()
	f.calls = append(f.calls, method+" "+path)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if out != nil && f.data != nil {
		raw, _ := json.Marshal(f.data)
		_ = json.Unmarshal(raw, out)
	}
	return &types.Envelope{Success: true}, nil
}

func (f *fakeDoer) Get(_ context.Context, path string, query url.Values, out any) (*types.Envelope, error) {
	return f.record("GET", path, query, out)
}
func (f *fakeDoer) Post(_ context.Context, path string, query url.Values, _, out any) (*types.Envelope, error) {
	return f.record("POST", path, query, out)
}
func (f *fakeDoer) Put(_ context.Context, path string, query url.Values, _, out any) (*types.Envelope, error) {
	return f.record("PUT", path, query, out)
}
func (f *fakeDoer) Patch(_ context.Context, path string, query url.Values, _, out any) (*types.Envelope, error) {
	return f.record("PATCH", path, query, out)
}
func (f *fakeDoer) Delete(_ context.Context, path string, query url.Values, out any) (*types.Envelope, error) {
	return f.record("DELETE", path, query, out)
}

func newTestService(t *testing.T, api *fakeDoer, notifier notify.Notifier) *Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test"})
	svc, err := NewService(api, notifier, logg)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestCreateRejectsInvalidInputWithoutDispatch(t *testing.T) {
	api := &fakeDoer{}
	recorder := &notify.Recorder{}
	svc := newTestService(t, api, recorder)

	_, err := svc.Create(context.Background(), models.ProjectInput{}, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected %s but got %v", pkgerrors.CodeValidation, err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("invalid input must never reach the backend, got %v", api.calls)
	}
	if successes, _ := recorder.Counts(); successes != 0 {
		t.Fatalf("failed create must not notify success")
	}
}

func TestCreateNotifiesSuccessOnce(t *testing.T) {
	created := models.Project{ID: uuid.New(), Title: "Team feed"}
	api := &fakeDoer{data: created}
	recorder := &notify.Recorder{}
	svc := newTestService(t, api, recorder)

	got, err := svc.Create(context.Background(), validInput(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected the backend's project back, got %+v", got)
	}
	successes, errs := recorder.Counts()
	if successes != 1 || errs != 0 {
		t.Fatalf("expected exactly one success notification, got %d/%d", successes, errs)
	}
}

func TestCreateBackendFailureDoesNotNotifySuccess(t *testing.T) {
	api := &fakeDoer{err: pkgerrors.New(pkgerrors.CodeServer, "server error occurred")}
	recorder := &notify.Recorder{}
	svc := newTestService(t, api, recorder)

	if _, err := svc.Create(context.Background(), validInput(), uuid.New()); err == nil {
		t.Fatalf("expected the backend error to propagate")
	}
	if successes, _ := recorder.Counts(); successes != 0 {
		t.Fatalf("failed create must not notify success")
	}
}

func TestUpdateValidatesBeforeDispatch(t *testing.T) {
	api := &fakeDoer{}
	svc := newTestService(t, api, &notify.Recorder{})

	input := validInput()
	input.Title = ""
	if _, err := svc.Update(context.Background(), uuid.New(), input, uuid.New()); err == nil {
		t.Fatalf("expected a validation error")
	}
	if len(api.calls) != 0 {
		t.Fatalf("invalid update must never reach the backend")
	}
}

func TestDeleteNotifiesSuccess(t *testing.T) {
	api := &fakeDoer{}
	recorder := &notify.Recorder{}
	svc := newTestService(t, api, recorder)

	if err := svc.Delete(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if successes, _ := recorder.Counts(); successes != 1 {
		t.Fatalf("expected one success notification, got %d", successes)
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	api := &fakeDoer{}
	svc := newTestService(t, api, &notify.Recorder{})

	if _, err := svc.ChangeStatus(context.Background(), uuid.New(), "paused", uuid.New()); err == nil {
		t.Fatalf("expected a validation error")
	}
	if len(api.calls) != 0 {
		t.Fatalf("invalid status must never reach the backend")
	}
}
