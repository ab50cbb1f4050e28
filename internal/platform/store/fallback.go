package store

import (
	"context"
	"log"
	"sync"
)

// Fallback wraps a primary Store and recovers from its failures instead of
// surfacing them: a storage outage must never take the portal down. Every
// successful read and write is mirrored into an in-memory copy; the first
// backend error switches the wrapper to that copy for the rest of its life.
// Callers see a warning in the log and otherwise nothing.
type Fallback struct {
	mu       sync.Mutex
	primary  Store
	shadow   *Memory
	degraded bool
}

func NewFallback(primary Store) *Fallback {
	return &Fallback{primary: primary, shadow: NewMemory()}
}

func (f *Fallback) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.degraded {
		return f.shadow.Get(ctx, key)
	}

	data, ok, err := f.primary.Get(ctx, key)
	if err != nil {
		f.degrade("read", key, err)
		return f.shadow.Get(ctx, key)
	}
	if ok {
		f.shadow.Set(ctx, key, data)
	}
	return data, ok, nil
}

func (f *Fallback) Set(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.shadow.Set(ctx, key, data)
	if f.degraded {
		return nil
	}
	if err := f.primary.Set(ctx, key, data); err != nil {
		f.degrade("write", key, err)
	}
	return nil
}

// Degraded reports whether the wrapper has switched to its in-memory copy.
func (f *Fallback) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.degraded
}

func (f *Fallback) degrade(op, key string, err error) {
	f.degraded = true
	log.Printf("WARN: store %s for %q failed, continuing on in-memory data: %v", op, key, err)
}
