package mlmodel

import (
	"fmt"

	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// priceOracle artefakt üstünden tahmin yapan PriceModel implementasyonu.
// Durumsuzdur; eşzamanlı çağrılara açıktır.
type priceOracle struct {
	artifact *Artifact
	columns  []string
}

// NewPriceOracle artefakt ve kolon listesiyle oracle yaratır
func NewPriceOracle(artifact *Artifact, columns []string) repository.PriceModel {
	return &priceOracle{
		artifact: artifact,
		columns:  columns,
	}
}

// Columns modelin beklediği kolon listesi
func (o *priceOracle) Columns() []string {
	cols := make([]string, len(o.columns))
	copy(cols, o.columns)
	return cols
}

// Predict tek kayıt için fiyat tahmini. Kayıt hizalanmış olmalı: her
// gerekli kolon mevcut, eksikler Missing sentinel ile dolu.
func (o *priceOracle) Predict(record entity.FeatureVector) (float64, error) {
	price := o.artifact.Intercept

	for _, f := range record {
		if entity.IsMissing(f.Value) {
			// Imputasyon sabit terimde; eksik alan katkısız
			continue
		}

		if w, ok := o.artifact.NumericWeights[f.Column]; ok {
			num, err := numericValue(f.Value)
			if err != nil {
				return 0, apperr.NewPredictionError(f.Column, err.Error())
			}
			price += w * num
			continue
		}

		if levels, ok := o.artifact.CategoricalWeights[f.Column]; ok {
			level := fmt.Sprintf("%v", f.Value)
			w, known := levels[level]
			if !known {
				return 0, apperr.NewPredictionError(f.Column, fmt.Sprintf("bilinmeyen kategori seviyesi %q", level))
			}
			price += w
			continue
		}

		// Modelin ağırlık taşımadığı kolonlar tahmine katılmaz
	}

	return price, nil
}

// PredictBatch her kayda bağımsız Predict uygular; sıra korunur,
// kayıtlar birbirini etkilemez
func (o *priceOracle) PredictBatch(records []entity.FeatureVector) []repository.PredictOutcome {
	out := make([]repository.PredictOutcome, len(records))
	for i, rec := range records {
		price, err := o.Predict(rec)
		out[i] = repository.PredictOutcome{Price: price, Err: err}
	}
	return out
}

// numericValue sayısal kolon değerini float64'e çevirir
func numericValue(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("sayısal kolonda sayısal olmayan değer %v (%T)", v, v)
	}
}
