package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/shivsegv/campussetu/internal/platform/store"
)

// collection manages one persisted, versioned collection key. It owns the three
// lifecycle rules every dataset shares: seed-on-first-read (the bundled seed is
// written verbatim when the key is absent or its version marker is stale),
// whole-collection write-through on every mutation, and a per-collection writer
// lock so read-modify-write cycles cannot clobber each other.
type collection[T any] struct {
	mu      sync.Mutex
	st      store.Store
	key     string
	version string
	seed    []byte
}

func newCollection[T any](st store.Store, key, version string, seed []byte) *collection[T] {
	return &collection[T]{st: st, key: key, version: version, seed: seed}
}

func (c *collection[T]) versionKey() string { return c.key + ".version" }

// load reads the stored collection, reseeding when the marker is stale or the
// payload is corrupted. Callers must hold c.mu.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	marker, ok, err := c.st.Get(ctx, c.versionKey())
	if err != nil {
		return nil, fmt.Errorf("collection %q: read version marker: %w", c.key, err)
	}
	if !ok || string(marker) != c.version {
		return c.reseed(ctx)
	}

	data, ok, err := c.st.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("collection %q: read: %w", c.key, err)
	}
	if !ok {
		return c.reseed(ctx)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("WARN: collection %q is corrupted, reseeding: %v", c.key, err)
		return c.reseed(ctx)
	}
	return items, nil
}

func (c *collection[T]) reseed(ctx context.Context) ([]T, error) {
	var items []T
	if err := json.Unmarshal(c.seed, &items); err != nil {
		return nil, fmt.Errorf("collection %q: decode bundled seed: %w", c.key, err)
	}
	if err := c.st.Set(ctx, c.key, c.seed); err != nil {
		return nil, fmt.Errorf("collection %q: write seed: %w", c.key, err)
	}
	if err := c.st.Set(ctx, c.versionKey(), []byte(c.version)); err != nil {
		return nil, fmt.Errorf("collection %q: write version marker: %w", c.key, err)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("collection %q: encode: %w", c.key, err)
	}
	if err := c.st.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("collection %q: write: %w", c.key, err)
	}
	return nil
}

// View runs fn over a snapshot of the collection.
func (c *collection[T]) View(ctx context.Context, fn func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	return fn(items)
}

// Update runs fn as a read-modify-write cycle under the writer lock and writes
// the returned collection back whole. fn returning an error aborts the write.
func (c *collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, next)
}

// nextID allocates the next sequential id: max existing + 1, or 1 when empty.
func nextID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
