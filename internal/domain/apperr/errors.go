// Package apperr uygulama genelindeki hata tiplerini tanımlar.
// Sınır katmanları bu tipleri errors.As ile ayırt eder.
package apperr

import "fmt"

// ConfigurationError başlangıçta eksik/bozuk artefakt hatası.
// Kurtarılmaz; process fail-fast kapanır.
type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s (%s)", e.Reason, e.Path)
}

// NewConfigurationError eksik ya da okunamayan artefakt için hata yaratır
func NewConfigurationError(path, reason string) *ConfigurationError {
	return &ConfigurationError{Path: path, Reason: reason}
}

// PredictionError modelin girdiyi reddetmesi. Çağrı başına kurtarılabilir:
// ranking içinde ülke atlanır, /predict için hata gövdesine çevrilir.
type PredictionError struct {
	Column string
	Reason string
}

func (e *PredictionError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("prediction rejected: %s (column %q)", e.Reason, e.Column)
	}
	return fmt.Sprintf("prediction rejected: %s", e.Reason)
}

// NewPredictionError model girdi reddi için hata yaratır
func NewPredictionError(column, reason string) *PredictionError {
	return &PredictionError{Column: column, Reason: reason}
}

// UpstreamError LLM servisinin hata/timeout durumu. Kullanıcıya sabit
// özür metnine çevrilir, oturum durumu değişmez.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NewUpstreamError sağlayıcı hatasını sarar
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// ValidationError boş mesaj / bozuk JSON gibi istemci hataları
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Reason)
}

// NewValidationError istemci hatası yaratır
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
