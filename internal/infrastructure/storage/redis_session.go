package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

const sessionKeyPrefix = "session:"

// redisSessionRepository Redis destekli oturum deposu. Oturumlar JSON
// olarak TTL ile yazılır; eskime işini Redis yapar. Tur kilidi process
// içi tutulur (tek instance varsayımı).
type redisSessionRepository struct {
	client *redis.Client
	turns  *keyedMutex
	ttl    time.Duration
}

// NewRedisSessionRepository Redis oturum deposu yaratır ve bağlantıyı
// ping ile doğrular
func NewRedisSessionRepository(addr, password string, db int, ttl time.Duration) (repository.SessionRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping başarısız: %w", err)
	}

	return &redisSessionRepository{
		client: client,
		turns:  newKeyedMutex(),
		ttl:    ttl,
	}, nil
}

// Get oturumu okur; anahtar yoksa Idle durumda yeni oturum döner
func (r *redisSessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewSession(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get başarısız: %w", err)
	}

	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Bozuk kayıt: sıfırdan başlamak sohbeti düşürmekten iyi
		return entity.NewSession(id), nil
	}
	if sess.Slots == nil {
		sess.Slots = make(map[string]string)
	}
	return &sess, nil
}

// Put oturumu TTL ile yazar
func (r *redisSessionRepository) Put(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal başarısız: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set başarısız: %w", err)
	}
	return nil
}

// Acquire oturum başına tur kilidi
func (r *redisSessionRepository) Acquire(id string) func() {
	return r.turns.Acquire(id)
}

// Close Redis bağlantısını kapatır
func (r *redisSessionRepository) Close() error {
	return r.client.Close()
}
