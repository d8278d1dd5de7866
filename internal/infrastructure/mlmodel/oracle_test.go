package mlmodel

import (
	"errors"
	"testing"

	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

func testArtifact() *Artifact {
	return &Artifact{
		ModelType: "linear_regression",
		Target:    "price",
		Intercept: 10,
		NumericWeights: map[string]float64{
			"shipping_cost": 2,
		},
		CategoricalWeights: map[string]map[string]float64{
			"country": {
				"Germany": 5,
				"USA":     3,
			},
		},
	}
}

func record(values ...entity.FeatureValue) entity.FeatureVector {
	return entity.FeatureVector(values)
}

func TestPredict(t *testing.T) {
	oracle := NewPriceOracle(testArtifact(), []string{"shipping_cost", "country"})

	price, err := oracle.Predict(record(
		entity.FeatureValue{Column: "shipping_cost", Value: 3.0},
		entity.FeatureValue{Column: "country", Value: "Germany"},
	))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	// 10 + 2*3 + 5
	if price != 21 {
		t.Errorf("beklenen 21, gelen %v", price)
	}
}

func TestPredictUnknownCategoryLevel(t *testing.T) {
	oracle := NewPriceOracle(testArtifact(), []string{"shipping_cost", "country"})

	_, err := oracle.Predict(record(
		entity.FeatureValue{Column: "shipping_cost", Value: 1.0},
		entity.FeatureValue{Column: "country", Value: "Atlantis"},
	))
	if err == nil {
		t.Fatal("bilinmeyen seviye hata döndürmeli")
	}
	var predErr *apperr.PredictionError
	if !errors.As(err, &predErr) {
		t.Fatalf("PredictionError bekleniyordu, gelen %T", err)
	}
	if predErr.Column != "country" {
		t.Errorf("hata kolonu country olmalı, gelen %q", predErr.Column)
	}
}

func TestPredictMissingContributesNothing(t *testing.T) {
	oracle := NewPriceOracle(testArtifact(), []string{"shipping_cost", "country"})

	price, err := oracle.Predict(record(
		entity.FeatureValue{Column: "shipping_cost", Value: entity.Missing},
		entity.FeatureValue{Column: "country", Value: entity.Missing},
	))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if price != 10 {
		t.Errorf("tüm alanlar eksikken sadece sabit terim kalmalı: beklenen 10, gelen %v", price)
	}
}

func TestPredictNonNumericInNumericColumn(t *testing.T) {
	oracle := NewPriceOracle(testArtifact(), []string{"shipping_cost"})

	_, err := oracle.Predict(record(
		entity.FeatureValue{Column: "shipping_cost", Value: "ucuz"},
	))
	var predErr *apperr.PredictionError
	if !errors.As(err, &predErr) {
		t.Fatalf("PredictionError bekleniyordu, gelen %v", err)
	}
}

func TestPredictBoolAsNumeric(t *testing.T) {
	art := testArtifact()
	art.NumericWeights["stock"] = 4
	oracle := NewPriceOracle(art, []string{"stock"})

	price, err := oracle.Predict(record(
		entity.FeatureValue{Column: "stock", Value: true},
	))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if price != 14 {
		t.Errorf("bool true 1 sayılmalı: beklenen 14, gelen %v", price)
	}
}

func TestPredictBatchIndependence(t *testing.T) {
	oracle := NewPriceOracle(testArtifact(), []string{"country"})

	out := oracle.PredictBatch([]entity.FeatureVector{
		record(entity.FeatureValue{Column: "country", Value: "Germany"}),
		record(entity.FeatureValue{Column: "country", Value: "Atlantis"}),
		record(entity.FeatureValue{Column: "country", Value: "USA"}),
	})

	if len(out) != 3 {
		t.Fatalf("beklenen 3 sonuç, gelen %d", len(out))
	}
	if out[0].Err != nil || out[0].Price != 15 {
		t.Errorf("ilk kayıt: beklenen 15, gelen %v / %v", out[0].Price, out[0].Err)
	}
	if out[1].Err == nil {
		t.Error("ikinci kayıt hata döndürmeli")
	}
	if out[2].Err != nil || out[2].Price != 13 {
		t.Errorf("üçüncü kayıt: beklenen 13, gelen %v / %v", out[2].Price, out[2].Err)
	}
}
