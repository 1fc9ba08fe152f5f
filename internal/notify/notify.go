// Package notify stands in for the user-facing toast layer: every failed
// mutation surfaces exactly one error notification, every successful one
// exactly one success notification. Call sites own the exactly-once rule.
package notify

import (
	"context"
	"sync"

	"github.com/flowpms/flowpms-go/pkg/logger"
)

// Notifier receives user-visible outcome messages.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// Log is a Notifier that writes notifications through the structured logger.
type Log struct {
	logg *logger.Logger
}

// NewLog builds a logger-backed notifier.
func NewLog(logg *logger.Logger) *Log {
	return &Log{logg: logg}
}

func (l *Log) Success(ctx context.Context, message string) {
	if l == nil || l.logg == nil {
		return
	}
	l.logg.Info(l.logg.WithField(ctx, "notification", "success"), message)
}

func (l *Log) Error(ctx context.Context, message string) {
	if l == nil || l.logg == nil {
		return
	}
	l.logg.Warn(l.logg.WithField(ctx, "notification", "error"), message)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}

// Counts returns the number of success and error notifications seen.
func (r *Recorder) Counts() (successes, errors int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Successes), len(r.Errors)
}
