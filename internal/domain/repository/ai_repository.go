package repository

import "context"

// AIRepository genel amaçlı dil modeli servisi için interface.
// State machine yapılandırılmış cevap üretemediğinde buraya düşer.
type AIRepository interface {
	// GenerateReply kullanıcı mesajına serbest metin yanıt üretir.
	// Sağlayıcı hatasında apperr.UpstreamError döndürür.
	GenerateReply(ctx context.Context, prompt string) (string, error)

	// Close client'ı kapatır
	Close() error
}
