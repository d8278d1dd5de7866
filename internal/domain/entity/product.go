package entity

// Product referans veri setinden yüklenen bir katalog kaydı.
// Yükleme tamamlandıktan sonra değişmez.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	Country      string  `json:"country"`
	ShippingCost float64 `json:"shipping_cost"`
	City         string  `json:"city"`
	Seller       string  `json:"seller"`
	InStock      bool    `json:"in_stock"`
	Platform     string  `json:"platform"`
	Month        int     `json:"month"` // son güncelleme ayı (1-12)
}

// Attributes ürünü fiyat tahmini için ham özellik kaydına çevirir
func (p *Product) Attributes() map[string]any {
	return map[string]any{
		"product_name_clean": p.Name,
		"category":           p.Category,
		"brand":              p.Brand,
		"country":            p.Country,
		"shipping_cost":      p.ShippingCost,
		"city":               p.City,
		"seller":             p.Seller,
		"stock":              p.InStock,
		"platform":           p.Platform,
		"month":              p.Month,
	}
}
