package usecase

import (
	"context"
	"fmt"

	"github.com/yourusername/export-advisor-bot/internal/domain/constants"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// PredictResult tek tahmin çağrısının tam sonucu. Kısmi doldurulmuş
// başarı şekli yoktur; hata varsa sonuç dönmez.
type PredictResult struct {
	PredictedPrice float64               `json:"predicted_price"`
	Recommendation entity.Recommendation `json:"recommendation_data"`
}

// PredictUseCase ham özellik kaydından fiyat tahmini + ülke önerisi üretir
type PredictUseCase interface {
	Predict(ctx context.Context, attributes map[string]any) (*PredictResult, error)
}

type predictUseCase struct {
	model       repository.PriceModel
	productRepo repository.ProductRepository
	ranker      *CountryRanker
}

// NewPredictUseCase yeni PredictUseCase yaratır
func NewPredictUseCase(model repository.PriceModel, productRepo repository.ProductRepository) PredictUseCase {
	return &predictUseCase{
		model:       model,
		productRepo: productRepo,
		ranker:      NewCountryRanker(model),
	}
}

// Predict kaydı hizalayıp modelden geçirir, ardından aynı kaydı aday
// ülkeler üstünde sıralar. Model girdiyi reddederse apperr.PredictionError
// olduğu gibi döner; çağıran sınırda hata gövdesine çevirir.
func (u *predictUseCase) Predict(ctx context.Context, attributes map[string]any) (*PredictResult, error) {
	aligned := Align(attributes, u.model.Columns())
	price, err := u.model.Predict(aligned)
	if err != nil {
		return nil, err
	}

	candidates := CandidateCountries(ctx, u.productRepo)
	ranked := u.ranker.Rank(attributes, candidates, constants.TopCountries)

	subject := "Ürününüz"
	if cat, ok := attributes["category"].(string); ok && cat != "" {
		subject = cat
	}

	return &PredictResult{
		PredictedPrice: price,
		Recommendation: entity.Recommendation{
			Headline:   fmt.Sprintf("%q için en çok potansiyel barındıran ülkeler:", subject),
			HSCodeInfo: "NLP analizi devam ediyor...",
			Countries:  ranked,
			Reason:     "Sıralama, ürün özellikleriniz sabit tutulup ülke değiştirilerek yapılan fiyat tahminlerine dayanır.",
		},
	}, nil
}

// CandidateCountries aday ülke listesini katalogdan çıkarır; katalog boşsa
// varsayılan listeye düşer
func CandidateCountries(ctx context.Context, productRepo repository.ProductRepository) []string {
	if productRepo != nil {
		if countries, err := productRepo.Countries(ctx); err == nil && len(countries) > 0 {
			return countries
		}
	}
	return constants.DefaultCandidateCountries
}
