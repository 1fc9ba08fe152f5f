package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/flowpms/flowpms-go/pkg/kv"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// DefaultHistoryLimit caps how many entries the history retains.
const DefaultHistoryLimit = 20

// History persists the local search history. It is intentionally forgiving:
// storage failures and corrupt blobs are logged and treated as an empty
// history, never surfaced to the caller.
type History struct {
	store kv.Store
	logg  *logger.Logger
	limit int
	now   func() time.Time
}

// NewHistory wraps the store with the history contract. A non-positive limit
// falls back to DefaultHistoryLimit.
func NewHistory(store kv.Store, logg *logger.Logger, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{store: store, logg: logg, limit: limit, now: time.Now}
}

// List returns the stored history, most recent first.
func (h *History) List(ctx context.Context) []models.HistoryEntry {
	raw, found, err := h.store.Get(ctx, kv.KeySearchHistory)
	if err != nil {
		h.logg.Warn(ctx, "search history read failed: "+err.Error())
		return nil
	}
	if !found || raw == "" {
		return nil
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.logg.Warn(ctx, "search history corrupt, resetting: "+err.Error())
		return nil
	}
	return entries
}

// Add records a search. An entry with the same exact trimmed query moves to
// the front and its count increments; otherwise a new entry is prepended and
// the oldest entry beyond the limit is evicted. Blank queries are ignored.
// The resulting history is returned even when persisting fails.
func (h *History) Add(ctx context.Context, query string) []models.HistoryEntry {
	trimmed := strings.TrimSpace(query)
	entries := h.List(ctx)
	if trimmed == "" {
		return entries
	}

	entry := models.HistoryEntry{Query: trimmed, Timestamp: h.now(), Count: 1}
	for i, existing := range entries {
		if existing.Query == trimmed {
			entry.Count = existing.Count + 1
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	entries = append([]models.HistoryEntry{entry}, entries...)
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}

	h.persist(ctx, entries)
	return entries
}

// Remove drops the entry with the exact query, if present.
func (h *History) Remove(ctx context.Context, query string) []models.HistoryEntry {
	trimmed := strings.TrimSpace(query)
	entries := h.List(ctx)
	for i, existing := range entries {
		if existing.Query == trimmed {
			entries = append(entries[:i], entries[i+1:]...)
			h.persist(ctx, entries)
			break
		}
	}
	return entries
}

// Clear removes the whole history.
func (h *History) Clear(ctx context.Context) []models.HistoryEntry {
	if err := h.store.Delete(ctx, kv.KeySearchHistory); err != nil {
		h.logg.Warn(ctx, "search history clear failed: "+err.Error())
	}
	return nil
}

func (h *History) persist(ctx context.Context, entries []models.HistoryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		h.logg.Warn(ctx, "search history encode failed: "+err.Error())
		return
	}
	if err := h.store.Set(ctx, kv.KeySearchHistory, string(raw)); err != nil {
		h.logg.Warn(ctx, "search history write failed: "+err.Error())
	}
}
