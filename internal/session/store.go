// Package session keeps transfer previews alive between the preview
// call and the execute call. Entries are addressed by an opaque ID and
// kept in a size-bounded LRU with a TTL, so abandoned previews age out
// on their own.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/transfer"
)

const (
	// DefaultSize is the maximum number of concurrent preview sessions.
	DefaultSize = 256
	// DefaultTTL is how long an untouched session stays valid.
	DefaultTTL = 30 * time.Minute
)

// Store holds preview sessions.
type Store struct {
	lru *expirable.LRU[string, *transfer.Preview]
}

func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		lru: expirable.NewLRU[string, *transfer.Preview](size, nil, ttl),
	}
}

// Put stores a preview and returns its session ID.
func (s *Store) Put(preview *transfer.Preview) string {
	id := uuid.NewString()
	s.lru.Add(id, preview)
	return id
}

// Get returns the preview stored under id. Expired and evicted sessions
// are gone.
func (s *Store) Get(id string) (*transfer.Preview, error) {
	preview, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return preview, nil
}

// Delete drops a session. Unknown IDs are ignored.
func (s *Store) Delete(id string) {
	s.lru.Remove(id)
}

// Len reports the live session count.
func (s *Store) Len() int {
	return s.lru.Len()
}
