// Package kv provides the key-value persistence interface backing locally
// stored client state (auth token, search history, dismissed notices). The
// same logic runs against memory, sqlite, or redis backings.
package kv

import "context"

// Fixed keys shared across the client.
const (
	KeyAuthToken          = "authToken"
	KeySearchHistory      = "searchHistory"
	KeyMaintenanceHidden  = "maintenanceModalHidden"
	namespace             = "flowpms"
	namespaceKeySeparator = ":"
)

// Store is the persistence contract. Get reports found=false for a missing
// key rather than an error so callers can distinguish absence from failure.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func namespacedKey(key string) string {
	return namespace + namespaceKeySeparator + key
}
