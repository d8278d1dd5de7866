package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// memoryProductRepository referans veri setinden yüklenen salt-okunur
// katalog. Anahtar küçük harfe çevrilmiş kanonik isim; aynı isim ikinci
// kez gelirse ilk kayıt kazanır. keys dilimi ekleme sırasını korur,
// substring araması bu sırayla deterministik döner.
type memoryProductRepository struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	keys      []string
	countries []string
}

// NewMemoryProductRepository boş katalog yaratır
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]entity.Product),
	}
}

// SaveMany katalog kayıtlarını yükler (first-seen-wins)
func (m *memoryProductRepository) SaveMany(ctx context.Context, products []entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seenCountry := make(map[string]bool, len(m.countries))
	for _, c := range m.countries {
		seenCountry[c] = true
	}

	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			continue
		}
		if _, exists := m.products[key]; !exists {
			m.products[key] = p
			m.keys = append(m.keys, key)
		}
		if country := strings.TrimSpace(p.Country); country != "" && !seenCountry[country] {
			seenCountry[country] = true
			m.countries = append(m.countries, country)
		}
	}
	return nil
}

// FindByUtterance katalog adı mesajda substring olarak geçen ilk kaydı
// döndürür. Eşleştirme bilerek gevşek: "a" gibi bir katalog adı neredeyse
// her mesajla eşleşir; referans davranışla uyum için korunuyor.
func (m *memoryProductRepository) FindByUtterance(ctx context.Context, utterance string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, key := range m.keys {
		if strings.Contains(utterance, key) {
			p := m.products[key]
			return &p, nil
		}
	}
	return nil, nil
}

// Countries katalogdaki ülkeler, ilk görülme sırasıyla
func (m *memoryProductRepository) Countries(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.countries))
	copy(out, m.countries)
	return out, nil
}

// Count katalogdaki kayıt sayısı
func (m *memoryProductRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}
