// Package store provides the persisted collection store: a flat key-value space
// holding one JSON-serialized collection per key. Collections are always read and
// rewritten whole; there are no partial or delta writes.
package store

import "context"

// Store is the contract every backend implements. Get reports (nil, false, nil)
// for an absent key. Version markers are stored under derived keys by the
// repository layer, so backends only ever see opaque byte payloads.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}
