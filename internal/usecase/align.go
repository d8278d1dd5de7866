package usecase

import (
	"strconv"
	"strings"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// Align ham özellik kaydını modelin beklediği kolon kümesine/sırasına
// hizalar. Gerekli olup kayıtta bulunmayan kolonlar Missing sentinel ile
// doldurulur; gereksiz kolonlar sonuca girmez. Sözleşme gereği asla hata
// döndürmez.
func Align(raw map[string]any, requiredColumns []string) entity.FeatureVector {
	aligned := make(entity.FeatureVector, 0, len(requiredColumns))
	for _, col := range requiredColumns {
		val, ok := raw[col]
		if !ok || val == nil {
			aligned = append(aligned, entity.FeatureValue{Column: col, Value: entity.Missing})
			continue
		}
		aligned = append(aligned, entity.FeatureValue{Column: col, Value: CoerceValue(val)})
	}
	return aligned
}

// CoerceValue deterministik ve total tip dönüşümü: "true"/"false"
// (büyük/küçük harf farksız) bool olur, tamamen sayı olarak parse edilen
// stringler float64 olur, gerisi olduğu gibi geçer.
func CoerceValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true
	case "false":
		return false
	}

	if num, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return num
	}
	return v
}
