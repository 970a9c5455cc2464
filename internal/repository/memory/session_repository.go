package memory

import (
	"time"

	"knowex-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in memory and drops them after ttl
// without access.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration, onEvicted func(sessionID string)) *SessionRepository {
	cleanup := ttl / 6
	if cleanup < time.Second {
		cleanup = time.Second
	}
	c := cache.New(ttl, cleanup)
	if onEvicted != nil {
		c.OnEvicted(func(key string, _ interface{}) { onEvicted(key) })
	}
	return &SessionRepository{cache: c, ttl: ttl}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

// Get returns the session and extends its lifetime.
func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	session := x.(*store.Session)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
