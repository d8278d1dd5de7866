package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
)

// Artifact eğitilmiş regresyon modelinin diske yazılmış hali: sabit terim,
// sayısal kolon ağırlıkları ve kategorik kolonlar için seviye-ağırlık
// tabloları. Eğitim tarafı eksik değer imputasyonunu sabit terime katar,
// bu yüzden Missing sentinel katkısızdır.
type Artifact struct {
	ModelType          string                        `json:"model_type"`
	Target             string                        `json:"target"`
	Intercept          float64                       `json:"intercept"`
	NumericWeights     map[string]float64            `json:"numeric_weights"`
	CategoricalWeights map[string]map[string]float64 `json:"categorical_weights"`
}

// LoadArtifact model artefaktını okur. Dosya eksik/bozuksa
// ConfigurationError döner; process bununla fail-fast kapanmalı.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("model artifact okunamadı: %v", err))
	}

	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("model artifact parse edilemedi: %v", err))
	}
	if art.Intercept == 0 && len(art.NumericWeights) == 0 && len(art.CategoricalWeights) == 0 {
		return nil, apperr.NewConfigurationError(path, "model artifact boş")
	}
	return &art, nil
}

// LoadFeatureColumns modelin beklediği kolon listesini okur
// (feature_columns.json, sıralı string dizisi)
func LoadFeatureColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("kolon listesi okunamadı: %v", err))
	}

	var cols []string
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("kolon listesi parse edilemedi: %v", err))
	}
	if len(cols) == 0 {
		return nil, apperr.NewConfigurationError(path, "kolon listesi boş")
	}
	return cols, nil
}
