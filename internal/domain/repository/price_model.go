package repository

import "github.com/yourusername/export-advisor-bot/internal/domain/entity"

// PredictOutcome toplu tahminde tek kaydın sonucu
type PredictOutcome struct {
	Price float64
	Err   error
}

// PriceModel eğitilmiş regresyon modelini saran fiyat tahmincisi.
// Durumsuzdur; aynı girdi her zaman aynı çıktıyı verir.
type PriceModel interface {
	// Predict tam hizalanmış kayıt için tek fiyat tahmini döndürür.
	// Model girdiyi reddederse apperr.PredictionError döner.
	Predict(record entity.FeatureVector) (float64, error)

	// PredictBatch her kayda Predict'i bağımsız uygular, sıra korunur
	PredictBatch(records []entity.FeatureVector) []PredictOutcome

	// Columns modelin beklediği kolon listesi (sıralı)
	Columns() []string
}
