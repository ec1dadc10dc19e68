package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"insurance-orchestrator/internal/model"
)

// DefaultCapacity bounds the number of live sessions held in memory.
const DefaultCapacity = 10000

// DefaultTTL evicts sessions that have been idle for this long.
const DefaultTTL = 30 * time.Minute

// MemoryStore is a volatile Store backed by an expiring LRU cache.
// Suited for single-instance deployments and tests; sessions are lost
// on restart and under capacity pressure the least recently used
// conversation is evicted first.
type MemoryStore struct {
	keyLocker
	cache *expirable.LRU[string, model.Session]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an in-memory store. capacity <= 0 and
// ttl <= 0 fall back to the defaults.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		cache: expirable.NewLRU[string, model.Session](capacity, nil, ttl),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (model.Session, error) {
	if sess, ok := s.cache.Get(sessionID); ok {
		return sess.Clone(), nil
	}
	return model.NewSession(sessionID), nil
}

func (s *MemoryStore) Save(ctx context.Context, sess model.Session) error {
	sess.UpdatedAt = time.Now()
	s.cache.Add(sess.ID, sess.Clone())
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
