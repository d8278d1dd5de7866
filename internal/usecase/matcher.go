package usecase

import (
	"strings"

	"github.com/yourusername/export-advisor-bot/internal/domain/constants"
)

// Intent bir mesajın mevcut stage için ne anlama geldiği
type Intent int

const (
	IntentUnknown Intent = iota
	IntentAffirmative
	IntentToy
	IntentMaterialWood
	IntentMaterialPlastic
	IntentMaterialFabric
	IntentPhilosophy
)

// KeywordMatcher sabit küçük kelime dağarcıklarına karşı substring
// eşleştirme yapar. State machine'e Intent dışında detay sızdırmaz;
// ileride tokenize/fuzzy eşleştirmeyle değiştirilebilir.
type KeywordMatcher struct {
	affirmative []string
	toy         []string
	wood        []string
	plastic     []string
	fabric      []string
	philosophy  []string
}

// NewKeywordMatcher varsayılan kelime dağarcığıyla matcher yaratır
func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{
		affirmative: constants.AffirmativeKeywords,
		toy:         constants.ToyKeywords,
		wood:        constants.WoodKeywords,
		plastic:     constants.PlasticKeywords,
		fabric:      constants.FabricKeywords,
		philosophy:  constants.PhilosophyKeywords,
	}
}

// ClassifyIdle Idle durumdaki mesajı sınıflandırır (katalog eşleşmesi
// çağıran tarafta yapılır, burada sadece oyuncak anahtar kelimesi aranır)
func (m *KeywordMatcher) ClassifyIdle(utterance string) Intent {
	if containsAny(utterance, m.toy) {
		return IntentToy
	}
	return IntentUnknown
}

// ClassifyConfirmation onay beklerken mesajı sınıflandırır
func (m *KeywordMatcher) ClassifyConfirmation(utterance string) Intent {
	if containsAny(utterance, m.affirmative) {
		return IntentAffirmative
	}
	return IntentUnknown
}

// ClassifyMaterial malzeme beklerken mesajı sınıflandırır
func (m *KeywordMatcher) ClassifyMaterial(utterance string) Intent {
	switch {
	case containsAny(utterance, m.wood):
		return IntentMaterialWood
	case containsAny(utterance, m.plastic):
		return IntentMaterialPlastic
	case containsAny(utterance, m.fabric):
		return IntentMaterialFabric
	default:
		return IntentUnknown
	}
}

// ClassifyPhilosophy felsefe beklerken mesajı sınıflandırır; ikinci dönüş
// eşleşen kelimenin kendisi (slot'a yazılır)
func (m *KeywordMatcher) ClassifyPhilosophy(utterance string) (Intent, string) {
	lower := strings.ToLower(utterance)
	for _, kw := range m.philosophy {
		if strings.Contains(lower, kw) {
			return IntentPhilosophy, kw
		}
	}
	return IntentUnknown, ""
}

func containsAny(utterance string, keywords []string) bool {
	lower := strings.ToLower(utterance)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
