package usecase

import (
	"fmt"
	"log"
	"sort"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// CountryRanker sabit bir ürün için aday ülkeleri tahmini satış fiyatına
// göre sıralar
type CountryRanker struct {
	model repository.PriceModel
}

// NewCountryRanker fiyat modeliyle ranker yaratır
func NewCountryRanker(model repository.PriceModel) *CountryRanker {
	return &CountryRanker{model: model}
}

// Rank her aday ülke için baseRecord kopyasında country alanını değiştirip
// tahmin çalıştırır. Tahmini başarısız ülkeler loglanıp atlanır; hepsi
// başarısızsa boş liste döner, hata değil. Sıralama fiyat azalan, eşitlikte
// aday listesi sırası korunur (stable).
func (r *CountryRanker) Rank(baseRecord map[string]any, candidates []string, topN int) []entity.RankedCountry {
	columns := r.model.Columns()
	ranked := make([]entity.RankedCountry, 0, len(candidates))

	for _, country := range candidates {
		sample := make(map[string]any, len(baseRecord)+1)
		for k, v := range baseRecord {
			sample[k] = v
		}
		sample["country"] = country

		price, err := r.model.Predict(Align(sample, columns))
		if err != nil {
			log.Printf("[ranker] %s için tahmin atlandı: %v", country, err)
			continue
		}

		ranked = append(ranked, entity.RankedCountry{
			Country:        country,
			PredictedPrice: price,
			Reason:         fmt.Sprintf("%s için tahmini satış fiyatı %.2f USD", country, price),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PredictedPrice > ranked[j].PredictedPrice
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
