package repository

import (
	"context"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// ChatLogRepository sohbet transkriptlerini kalıcı loglayan depo.
// Opsiyoneldir; kapalıyken dialog akışı etkilenmez.
type ChatLogRepository interface {
	Save(ctx context.Context, message entity.ChatMessage) error
	Close() error
}
