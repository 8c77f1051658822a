package repository

import (
	"context"
	"errors"
)

// Storage keys. Each dataset is serialized as a single JSON document under
// a fixed key, so a full flush follows every mutation.
const (
	KeyPatients = "ayurcare_patients"
	KeySettings = "ayurcare_settings"
	KeyAudit    = "ayurcare_audit"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence contract shared by all store drivers
// (file, redis, postgres, memory).
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
