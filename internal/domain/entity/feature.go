package entity

// missing sentinel tipi; geçerli hiçbir alan değeriyle çakışmaz
type missing struct{}

// Missing eksik alanlar için sentinel değer. Hizalanmış kayıtta alan
// hiçbir zaman atlanmaz, eksikse bu değerle doldurulur.
var Missing = missing{}

// IsMissing değerin sentinel olup olmadığını söyler
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// FeatureValue hizalanmış kayıttaki tek bir kolon
type FeatureValue struct {
	Column string
	Value  any
}

// FeatureVector modelin beklediği kolon kümesi/sırası ile birebir aynı
// hizalanmış kayıt
type FeatureVector []FeatureValue

// Columns kolon adlarını vektördeki sırayla döndürür
func (fv FeatureVector) Columns() []string {
	cols := make([]string, len(fv))
	for i, f := range fv {
		cols[i] = f.Column
	}
	return cols
}

// Get kolon değerini döndürür; kolon yoksa ikinci dönüş false
func (fv FeatureVector) Get(column string) (any, bool) {
	for _, f := range fv {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}
