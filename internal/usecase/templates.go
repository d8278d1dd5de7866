package usecase

import (
	"strings"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// Şablon anahtarları
const (
	TemplateWoodToy    = "oyuncak_ahsap"
	TemplatePlasticToy = "oyuncak_plastik"
	TemplateFabricToy  = "oyuncak_kumas"
	TemplateOliveOil   = "zeytinyagi"
	TemplateSolarPanel = "gunes_paneli"
	TemplateTextile    = "tekstil"
)

// staticTemplates kaba kategori -> önceden yazılmış öneri tablosu.
// Öğrenme yok, rastgelelik yok; aynı anahtar her zaman aynı nesneyi verir.
var staticTemplates = map[string]entity.Recommendation{
	TemplateWoodToy: {
		Headline:   "Ahşap oyuncaklar için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "Ürününüz için en olası HS Kodu: 9503.00.",
		Countries: []entity.RankedCountry{
			{Country: "Germany", PredictedPrice: 68.50, Reason: "Montessori/Waldorf okul kültürü ve doğal malzemeye yüksek talep."},
			{Country: "Netherlands", PredictedPrice: 61.20, Reason: "Sürdürülebilir ürünlere güçlü tüketici eğilimi."},
			{Country: "Sweden", PredictedPrice: 57.80, Reason: "Ahşap oyuncak geleneği ve yüksek alım gücü."},
			{Country: "USA", PredictedPrice: 54.30, Reason: "Büyük pazar; eğitici oyuncak segmenti hızla büyüyor."},
			{Country: "Japan", PredictedPrice: 49.90, Reason: "Kaliteli el işçiliğine verilen önem."},
		},
		Reason: "Eğitim felsefesi odaklı ahşap oyuncaklar bu pazarlarda standart plastik oyuncaklardan belirgin fiyat primi alır.",
	},
	TemplatePlasticToy: {
		Headline:   "Plastik oyuncaklar için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "Ürününüz için en olası HS Kodu: 9503.00.",
		Countries: []entity.RankedCountry{
			{Country: "USA", PredictedPrice: 32.40, Reason: "Dünyanın en büyük oyuncak pazarı; hacimle kazanç."},
			{Country: "United Kingdom", PredictedPrice: 28.70, Reason: "E-ticaret yaygınlığı ve lisanslı ürün talebi."},
			{Country: "Germany", PredictedPrice: 26.10, Reason: "Güvenlik sertifikalı ürünlere istikrarlı talep."},
			{Country: "France", PredictedPrice: 24.80, Reason: "Geniş perakende ağı ve güçlü ticaret ilişkileri."},
			{Country: "Spain", PredictedPrice: 22.30, Reason: "Gelişen pazar, düşük rekabet avantajı."},
		},
		Reason: "Plastik oyuncakta marj düşüktür; önerilen pazarlar hacim ve düşük lojistik maliyetiyle öne çıkar.",
	},
	TemplateFabricToy: {
		Headline:   "Kumaş/peluş oyuncaklar için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "Ürününüz için en olası HS Kodu: 9503.00.",
		Countries: []entity.RankedCountry{
			{Country: "Japan", PredictedPrice: 45.60, Reason: "Peluş ve karakter ürünlerine çok güçlü talep."},
			{Country: "USA", PredictedPrice: 41.20, Reason: "Hediye segmentinde yüksek fiyat toleransı."},
			{Country: "Germany", PredictedPrice: 37.90, Reason: "Organik/doğal kumaş sertifikalı ürünlere prim."},
			{Country: "France", PredictedPrice: 34.50, Reason: "Tasarım odaklı bebek ürünleri pazarı."},
			{Country: "South Korea", PredictedPrice: 31.70, Reason: "Karakter lisanslı peluş trendi."},
		},
		Reason: "El yapımı ve doğal kumaş vurgusu bu pazarlarda fiyatı yukarı çeker.",
	},
	TemplateOliveOil: {
		Headline:   "\"Zeytinyağı\" için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "NLP analizi sonucunda ürününüz için en olası HS Kodu: 1509.",
		Countries: []entity.RankedCountry{
			{Country: "Germany", PredictedPrice: 150.0, Reason: "Yüksek talep ve Türkiye'den düşük rekabet."},
			{Country: "France", PredictedPrice: 120.0, Reason: "Büyük pazar ve güçlü ticaret ilişkileri."},
			{Country: "Japan", PredictedPrice: 90.0, Reason: "Yüksek kaliteye verilen önem ve artan talep."},
		},
		Reason: "Önerilen ülkeler, yüksek ithalat hacmine sahip olmalarına rağmen, sizin gibi yeni bir ihracatçı için düşük rekabet avantajı sunmaktadır.",
	},
	TemplateSolarPanel: {
		Headline:   "\"Güneş Paneli\" için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "NLP analizi sonucunda ürününüz için en olası HS Kodu: 8541.40.",
		Countries: []entity.RankedCountry{
			{Country: "United States of America", PredictedPrice: 3000.0, Reason: "Yenilenebilir enerji yatırımları ve teşvikler."},
			{Country: "Australia", PredictedPrice: 1500.0, Reason: "Yüksek güneşlenme süresi ve evsel talep."},
			{Country: "Brazil", PredictedPrice: 800.0, Reason: "Devlet destekleri ve gelişmekte olan pazar."},
		},
		Reason: "Bu ülkeler, yenilenebilir enerjiye olan küresel talebin hızla artması nedeniyle yüksek büyüme potansiyeline sahiptir.",
	},
	TemplateTextile: {
		Headline:   "\"Tekstil Sektörü\" için en uygun potansiyel barındıran ülkeler:",
		HSCodeInfo: "Sektör geniş olduğu için birden fazla HS Kodu olabilir.",
		Countries: []entity.RankedCountry{
			{Country: "Spain", PredictedPrice: 2000.0, Reason: "Hızlı moda endüstrisi ve güçlü perakende pazarı."},
			{Country: "United Kingdom", PredictedPrice: 1800.0, Reason: "Marka sadakati ve e-ticaretin yaygınlığı."},
			{Country: "Netherlands", PredictedPrice: 1000.0, Reason: "Tekstil ticaretinde önemli bir merkez konumu."},
		},
		Reason: "Bu ülkelerde Türk tekstil ürünlerine karşı yüksek talep ve olumlu algı bulunmaktadır.",
	},
}

// sektör şablonlarını Idle'da tetikleyen kelimeler; sıralı liste,
// eşleşme deterministik kalsın
var sectorTemplateKeywords = []struct {
	keyword string
	key     string
}{
	{"zeytinyağı", TemplateOliveOil},
	{"zeytinyagi", TemplateOliveOil},
	{"güneş paneli", TemplateSolarPanel},
	{"gunes paneli", TemplateSolarPanel},
	{"tekstil", TemplateTextile},
}

// LookupTemplate anahtar için önceden yazılmış öneriyi döndürür. Dönen
// nesne her çağrıda bağımsız kopyadır; çağıran mutasyonu tabloyu bozmaz.
func LookupTemplate(key string) (entity.Recommendation, bool) {
	rec, ok := staticTemplates[key]
	if !ok {
		return entity.Recommendation{}, false
	}
	return rec.Clone(), true
}

// MatchSectorTemplate mesajda sektör şablonu anahtar kelimesi arar
func MatchSectorTemplate(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)
	for _, st := range sectorTemplateKeywords {
		if strings.Contains(lower, st.keyword) {
			return st.key, true
		}
	}
	return "", false
}
