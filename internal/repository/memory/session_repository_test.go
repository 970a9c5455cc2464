package memory

import (
	"sync/atomic"
	"testing"
	"time"

	"knowex-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryCRUD(t *testing.T) {
	repo := NewSessionRepository(time.Hour, nil)
	s := store.NewSession("s-1", time.Now())

	repo.Save(s)
	got, ok := repo.Get("s-1")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, repo.Count())

	repo.Delete("s-1")
	_, ok = repo.Get("s-1")
	assert.False(t, ok)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	var evicted atomic.Int32
	repo := NewSessionRepository(50*time.Millisecond, func(string) { evicted.Add(1) })
	repo.Save(store.NewSession("s-1", time.Now()))

	assert.Eventually(t, func() bool {
		_, ok := repo.Get("s-1")
		return !ok
	}, 2*time.Second, 10*time.Millisecond)

	// go-cache reports eviction from its janitor, which runs every second
	// at the shortest configured interval.
	assert.Eventually(t, func() bool { return evicted.Load() == 1 }, 3*time.Second, 50*time.Millisecond)
}
