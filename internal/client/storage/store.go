// Package storage is the client's persistent key/value adapter: the terminal
// counterpart of browser local storage. Values are stored as JSON text, empty
// values delete their key, and storage failures never reach the caller; they
// are logged and read back as "absent".
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"

	"github.com/dmitrijs2005/jobly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
)

// Store reads and writes JSON values by key.
type Store struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Read decodes the value stored under key into v and reports whether it was
// found. Missing keys, repository errors and malformed JSON all yield false.
func (s *Store) Read(ctx context.Context, key string, v any) bool {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "storage read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Error(ctx, "storage value is not valid JSON", "key", key, "error", err)
		return false
	}
	return true
}

// Write stores v under key. Nil values and empty strings remove the key
// instead, so "unset" and "set to nothing" cannot be told apart.
func (s *Store) Write(ctx context.Context, key string, v any) {
	if isEmpty(v) {
		s.Remove(ctx, key)
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "storage value cannot be encoded", "key", key, "error", err)
		return
	}

	if err := s.repo.Set(ctx, key, string(b)); err != nil {
		s.logger.Error(ctx, "storage write failed", "key", key, "error", err)
	}
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "storage remove failed", "key", key, "error", err)
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	case reflect.String:
		return rv.Len() == 0
	case reflect.Slice, reflect.Map:
		return rv.IsNil()
	default:
		return false
	}
}

// Slot mirrors a single key in memory. The mirror is loaded once by NewSlot;
// every Set updates it and persists immediately.
type Slot[T any] struct {
	store *Store
	key   string

	mu    sync.RWMutex
	value T
	set   bool
}

// NewSlot loads key from store into a fresh mirror.
func NewSlot[T any](ctx context.Context, store *Store, key string) *Slot[T] {
	s := &Slot[T]{store: store, key: key}
	var v T
	if store.Read(ctx, key, &v) && !isEmpty(v) {
		s.value, s.set = v, true
	}
	return s
}

// Get returns the mirrored value and whether one is present.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.set
}

// Set replaces the mirrored value and writes it through. An empty value
// clears the slot and removes the key.
func (s *Slot[T]) Set(ctx context.Context, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isEmpty(v) {
		var zero T
		s.value, s.set = zero, false
	} else {
		s.value, s.set = v, true
	}
	s.store.Write(ctx, s.key, v)
}

// Clear empties the slot and removes the key regardless of T.
func (s *Slot[T]) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value, s.set = zero, false
	s.store.Remove(ctx, s.key)
}
