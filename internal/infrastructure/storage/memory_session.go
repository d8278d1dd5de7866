package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

const janitorInterval = 5 * time.Minute

// memorySessionRepository in-memory oturum deposu. TTL verilirse arka
// planda süresi dolan oturumları temizler.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	turns    *keyedMutex
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemorySessionRepository in-memory oturum deposu yaratır.
// ttl=0 temizliği kapatır (oturumlar süresiz yaşar).
func NewMemorySessionRepository(ttl time.Duration) repository.SessionRepository {
	repo := &memorySessionRepository{
		sessions: make(map[string]*entity.Session),
		turns:    newKeyedMutex(),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go repo.janitor()
	}
	return repo
}

// Get oturumu döndürür; yoksa Idle durumda yeni oturum yaratır
func (m *memorySessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return entity.NewSession(id), nil
	}
	return sess.Clone(), nil
}

// Put oturumu kaydeder
func (m *memorySessionRepository) Put(ctx context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session.Clone()
	return nil
}

// Acquire oturum başına tur kilidi
func (m *memorySessionRepository) Acquire(id string) func() {
	return m.turns.Acquire(id)
}

// Close janitor'ı durdurur
func (m *memorySessionRepository) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *memorySessionRepository) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictStale()
		}
	}
}

func (m *memorySessionRepository) evictStale() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			log.Printf("[session] süresi dolan oturum silindi: %s", id)
		}
	}
}
