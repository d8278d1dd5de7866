package repository

import (
	"context"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// SessionRepository oturum durumu deposu. In-memory veya Redis destekli
// olabilir; dialog usecase hangisi olduğunu bilmez.
type SessionRepository interface {
	// Get oturumu döndürür; yoksa Idle durumda yeni oturum yaratır
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Put oturumu kaydeder
	Put(ctx context.Context, session *entity.Session) error

	// Acquire oturum başına tur kilidini alır; aynı oturumdan eşzamanlı
	// iki mesaj sıraya girer. Dönen fonksiyon kilidi bırakır.
	Acquire(id string) (release func())

	// Close arka plandaki temizlik işlerini durdurur
	Close() error
}
