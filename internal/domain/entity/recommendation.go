package entity

// RankedCountry sıralanmış ülke önerisi: tahmini fiyat azalan sırada
type RankedCountry struct {
	Country        string  `json:"country"`
	PredictedPrice float64 `json:"predicted_price"`
	Reason         string  `json:"reason"`
}

// Recommendation yapılandırılmış öneri. Country Ranker'dan da statik
// şablonlardan da aynı şekilde üretilir; çağıran taraf ayırt etmez.
type Recommendation struct {
	Headline   string          `json:"recommendation"`
	HSCodeInfo string          `json:"hs_code_info"`
	Countries  []RankedCountry `json:"countries"`
	Reason     string          `json:"reason"`
}

// Clone önerinin bağımsız kopyasını döndürür
func (r Recommendation) Clone() Recommendation {
	cp := r
	cp.Countries = make([]RankedCountry, len(r.Countries))
	copy(cp.Countries, r.Countries)
	return cp
}
