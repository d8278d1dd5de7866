package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/domain/constants"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// rejectingPriceModel her kaydı reddeden model
type rejectingPriceModel struct{}

func (r *rejectingPriceModel) Predict(rec entity.FeatureVector) (float64, error) {
	return 0, apperr.NewPredictionError("country", "bilinmeyen kategori seviyesi")
}

func (r *rejectingPriceModel) PredictBatch(recs []entity.FeatureVector) []repository.PredictOutcome {
	out := make([]repository.PredictOutcome, len(recs))
	for i, rec := range recs {
		price, err := r.Predict(rec)
		out[i] = repository.PredictOutcome{Price: price, Err: err}
	}
	return out
}

func (r *rejectingPriceModel) Columns() []string { return []string{"country"} }

func TestPredictComposesPriceAndRanking(t *testing.T) {
	model := &stubPriceModel{prices: map[string]float64{
		"Turkey":  40,
		"Germany": 55,
		"USA":     70,
	}}
	products := &stubProductRepo{countries: []string{"Germany", "USA"}}
	predict := NewPredictUseCase(model, products)

	result, err := predict.Predict(context.Background(), map[string]any{
		"category": "toys",
		"country":  "Turkey",
	})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// predicted_price gönderilen kaydın kendi tahminidir
	if result.PredictedPrice != 40 {
		t.Errorf("beklenen fiyat 40, gelen %v", result.PredictedPrice)
	}

	// recommendation_data aynı kayıt aday ülkeler üstünde sıralanarak dolar
	countries := result.Recommendation.Countries
	if len(countries) != 2 {
		t.Fatalf("iki aday ülke bekleniyordu, gelen %d", len(countries))
	}
	if countries[0].Country != "USA" || countries[0].PredictedPrice != 70 {
		t.Errorf("ilk sıra USA/70 olmalı, gelen %s/%v", countries[0].Country, countries[0].PredictedPrice)
	}
	if countries[1].Country != "Germany" || countries[1].PredictedPrice != 55 {
		t.Errorf("ikinci sıra Germany/55 olmalı, gelen %s/%v", countries[1].Country, countries[1].PredictedPrice)
	}

	// Başlık kategori alanından türetilir
	if !strings.Contains(result.Recommendation.Headline, "toys") {
		t.Errorf("başlık kategori adını taşımalı, gelen %q", result.Recommendation.Headline)
	}
}

func TestPredictRejectionPassesThrough(t *testing.T) {
	predict := NewPredictUseCase(&rejectingPriceModel{}, &stubProductRepo{})

	result, err := predict.Predict(context.Background(), map[string]any{"country": "Atlantis"})
	if result != nil {
		t.Error("hata durumunda kısmi sonuç dönmemeli")
	}
	var predErr *apperr.PredictionError
	if !errors.As(err, &predErr) {
		t.Fatalf("PredictionError olduğu gibi dönmeli, gelen %v", err)
	}
}

func TestPredictFallsBackToDefaultCountries(t *testing.T) {
	// Varsayılan listedeki ülkelerden sadece ikisi modelce tanınıyor;
	// katalog boşken adaylar varsayılan listeden gelmeli
	model := &stubPriceModel{prices: map[string]float64{
		"Turkey":  40,
		"Germany": 55,
		"France":  48,
	}}
	predict := NewPredictUseCase(model, &stubProductRepo{})

	result, err := predict.Predict(context.Background(), map[string]any{"country": "Turkey"})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	countries := result.Recommendation.Countries
	if len(countries) != 3 {
		t.Fatalf("varsayılan listeden tanınan 3 ülke bekleniyordu, gelen %d", len(countries))
	}
	if countries[0].Country != "Germany" {
		t.Errorf("en yüksek fiyatlı ülke başta olmalı, gelen %s", countries[0].Country)
	}
}

func TestCandidateCountries(t *testing.T) {
	ctx := context.Background()

	got := CandidateCountries(ctx, &stubProductRepo{countries: []string{"Japan", "Brazil"}})
	if len(got) != 2 || got[0] != "Japan" {
		t.Errorf("katalog ülkeleri öncelikli olmalı, gelen %v", got)
	}

	got = CandidateCountries(ctx, &stubProductRepo{})
	if len(got) != len(constants.DefaultCandidateCountries) {
		t.Errorf("boş katalogda varsayılan liste dönmeli, gelen %v", got)
	}

	got = CandidateCountries(ctx, nil)
	if len(got) != len(constants.DefaultCandidateCountries) {
		t.Errorf("nil repo'da varsayılan liste dönmeli, gelen %v", got)
	}
}
