package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

const createChatLogTable = `
CREATE TABLE IF NOT EXISTS chat_messages (
	id         UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	direction  TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// postgresChatLogRepository sohbet transkriptlerini Postgres'e yazar.
// Opsiyonel bir yan kanal: hata sohbet akışını etkilemez, sadece loglanır.
type postgresChatLogRepository struct {
	db *sql.DB
}

// NewPostgresChatLogRepository bağlantıyı açar, doğrular ve tabloyu
// hazırlar
func NewPostgresChatLogRepository(dsn string) (repository.ChatLogRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres açılamadı: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping başarısız: %w", err)
	}
	if _, err := db.ExecContext(ctx, createChatLogTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("chat_messages tablosu hazırlanamadı: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &postgresChatLogRepository{db: db}, nil
}

// Save tek transkript satırı yazar
func (p *postgresChatLogRepository) Save(ctx context.Context, message entity.ChatMessage) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, direction, text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		message.ID, message.SessionID, message.Direction, message.Text, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("transkript yazılamadı: %w", err)
	}
	return nil
}

// Close bağlantıyı kapatır
func (p *postgresChatLogRepository) Close() error {
	return p.db.Close()
}
