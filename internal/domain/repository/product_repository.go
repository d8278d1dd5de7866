package repository

import (
	"context"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// ProductRepository referans veri setinden yüklenen ürün kataloğu
type ProductRepository interface {
	// SaveMany katalog kayıtlarını yükler. Aynı normalize isim iki kez
	// gelirse ilk kayıt kazanır, sonrakiler atlanır.
	SaveMany(ctx context.Context, products []entity.Product) error

	// FindByUtterance küçük harfe çevrilmiş mesajda katalog adı substring
	// olarak geçen ilk kaydı döndürür (ekleme sırasıyla). Eşleşme yoksa nil.
	FindByUtterance(ctx context.Context, utterance string) (*entity.Product, error)

	// Countries katalogdaki ülkeleri ilk görülme sırasıyla döndürür
	Countries(ctx context.Context) ([]string, error)

	// Count katalogdaki kayıt sayısı
	Count(ctx context.Context) (int, error)
}
