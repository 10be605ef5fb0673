// Package state persists small key/value records, such as the serialized
// session projection.
package state

import "context"

// Repository is a minimal key/value store.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Missing keys are a silent no-op.
	Delete(ctx context.Context, key string) error
}

// SessionKey is where the serialized session projection lives.
const SessionKey = "session"
