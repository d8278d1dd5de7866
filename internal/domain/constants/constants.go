package constants

// AI Model sabitleri
const (
	// GeminiModelName Gemini AI model adı
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature AI yanıt kesinlik derecesi (0.0-1.0)
	AITemperature = 0.3

	// AITopK Top-K sampling parametresi
	AITopK = 20

	// AITopP Top-P sampling parametresi
	AITopP = 0.9

	// MaxRetries AI isteği için azami deneme sayısı
	MaxRetries = 3

	// RetryDelay denemeler arası bekleme (saniye)
	RetryDelay = 10

	// LLMTimeout tek tur içindeki LLM çağrısı için üst sınır (saniye).
	// Asılı kalan upstream oturumun tur kilidini süresiz tutamaz.
	LLMTimeout = 30
)

// Öneri sabitleri
const (
	// TopCountries sıralamada döndürülen azami ülke sayısı
	TopCountries = 5
)

// Dialog anahtar kelimeleri. Eşleşme her zaman küçük harfe çevrilmiş
// substring kontrolü; tokenize/fuzzy değil.
var (
	// AffirmativeKeywords tahmin onayı sayılan ifadeler
	AffirmativeKeywords = []string{"evet", "yes", "tahmin et", "fiyat"}

	// ToyKeywords oyuncak kategorisini başlatan ifadeler
	ToyKeywords = []string{"oyuncak", "toy"}

	// WoodKeywords ahşap malzeme eşdeğerleri
	WoodKeywords = []string{"ahşap", "ahsap", "tahta", "wood"}

	// PlasticKeywords plastik malzeme eşdeğerleri
	PlasticKeywords = []string{"plastik", "plastic"}

	// FabricKeywords kumaş malzeme eşdeğerleri
	FabricKeywords = []string{"kumaş", "kumas", "peluş", "pelus", "fabric"}

	// PhilosophyKeywords eğitim felsefesi eşdeğerleri
	PhilosophyKeywords = []string{"montessori", "waldorf", "educational", "eğitici", "egitici"}
)

// DefaultCandidateCountries referans veri seti ülke listesi boş kalırsa
// kullanılan aday ülkeler
var DefaultCandidateCountries = []string{"USA", "Germany", "France", "India", "Turkey", "China"}

// Sohbet metinleri
const (
	// EmptyMessageText boş mesaj yanıtı; oturum durumuna dokunulmaz
	EmptyMessageText = "Lütfen bir mesaj yazın."

	// LLMApologyText LLM servisi düştüğünde dönen özür metni
	LLMApologyText = "Üzgünüm, şu anda yanıt veremiyorum. Lütfen daha sonra tekrar deneyin."
)
