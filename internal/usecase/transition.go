package usecase

import (
	"fmt"
	"time"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// StepOp state machine'in tur sonunda istediği etki
type StepOp int

const (
	// OpReply düz metin yanıt ver
	OpReply StepOp = iota
	// OpLLM mesajı LLM fallback'e ilet
	OpLLM
	// OpRank slottaki ürün kaydı için ülke sıralaması çalıştır
	OpRank
	// OpTemplate statik öneri şablonu döndür
	OpTemplate
)

// StepResult tek turun sonucu: yeni oturum durumu ve yapılacak etki.
// Etkiler (LLM, ranking, şablon) bu fonksiyonun dışında yürütülür.
type StepResult struct {
	Next        *entity.Session
	Op          StepOp
	Reply       string
	TemplateKey string
	Record      *entity.Product // OpRank için sıralanacak ürün kaydı
}

// Sohbet metinleri
const (
	cannotIdentifyText   = "Üzgünüm, hangi ürün için tahmin isteğinizi tespit edemedim. Lütfen ürün adını tekrar yazın."
	declineText          = "Peki, tahmin yapmıyorum. Başka bir ürün veya soru için buradayım."
	materialQuestionText = "Harika, oyuncak kategorisi! Oyuncağınızın malzemesi nedir? (ahşap / plastik / kumaş)"
	materialRepromptText = "Malzemeyi anlayamadım. Lütfen ahşap, plastik veya kumaş olarak belirtin."
	philosophyQuestion   = "Ahşap oyuncak güzel bir seçim! Belirli bir eğitim felsefesine uygun mu? (montessori / waldorf / eğitici)"
	philosophyReprompt   = "Anlayamadım. Montessori, Waldorf veya eğitici olarak belirtebilir misiniz?"
)

// StateMachine oturum durumuna göre mesajları yorumlayan saf geçiş
// fonksiyonu. I/O yapmaz; katalog eşleşmesi dışarıdan verilir.
type StateMachine struct {
	matcher *KeywordMatcher
}

// NewStateMachine varsayılan matcher ile state machine yaratır
func NewStateMachine(matcher *KeywordMatcher) *StateMachine {
	return &StateMachine{matcher: matcher}
}

// Step bir kullanıcı mesajını işler. Girdi oturumunu değiştirmez; yeni
// durum her zaman kopya üstünde döner.
func (sm *StateMachine) Step(sess *entity.Session, utterance string, catalogMatch *entity.Product) StepResult {
	next := sess.Clone()
	next.UpdatedAt = time.Now()

	switch sess.Stage {
	case entity.StageAwaitingPredictionConfirmation:
		return sm.stepConfirmation(next, utterance)
	case entity.StageAwaitingMaterial:
		return sm.stepMaterial(next, utterance)
	case entity.StageAwaitingPhilosophy:
		return sm.stepPhilosophy(next, utterance)
	default:
		return sm.stepIdle(next, utterance, catalogMatch)
	}
}

func (sm *StateMachine) stepIdle(next *entity.Session, utterance string, catalogMatch *entity.Product) StepResult {
	if catalogMatch != nil {
		p := *catalogMatch
		next.Product = &p
		next.Stage = entity.StageAwaitingPredictionConfirmation
		reply := fmt.Sprintf("%q (%s markalı) ürününü kataloğumuzda buldum. Ülkelere göre satış fiyatı tahmini yapmamı ister misiniz? (evet/hayır)",
			p.Name, p.Brand)
		return StepResult{Next: next, Op: OpReply, Reply: reply}
	}

	if sm.matcher.ClassifyIdle(utterance) == IntentToy {
		next.Slots[entity.SlotProductType] = "toys"
		next.Stage = entity.StageAwaitingMaterial
		return StepResult{Next: next, Op: OpReply, Reply: materialQuestionText}
	}

	if key, ok := MatchSectorTemplate(utterance); ok {
		// Sektör adı geçiyorsa model beklemeden hazır öneri döner
		return StepResult{Next: next, Op: OpTemplate, TemplateKey: key}
	}

	return StepResult{Next: next, Op: OpLLM}
}

func (sm *StateMachine) stepConfirmation(next *entity.Session, utterance string) StepResult {
	affirmative := sm.matcher.ClassifyConfirmation(utterance) == IntentAffirmative
	record := next.Product

	next.Stage = entity.StageIdle
	next.Product = nil

	if !affirmative {
		return StepResult{Next: next, Op: OpReply, Reply: declineText}
	}
	if record == nil {
		return StepResult{Next: next, Op: OpReply, Reply: cannotIdentifyText}
	}

	// Kayıt sıralama için sonuçla taşınır; Idle'a dönen oturumda kalmaz
	return StepResult{Next: next, Op: OpRank, Record: record}
}

func (sm *StateMachine) stepMaterial(next *entity.Session, utterance string) StepResult {
	switch sm.matcher.ClassifyMaterial(utterance) {
	case IntentMaterialWood:
		next.Slots[entity.SlotMaterial] = "wood"
		next.Stage = entity.StageAwaitingPhilosophy
		return StepResult{Next: next, Op: OpReply, Reply: philosophyQuestion}
	case IntentMaterialPlastic:
		next.Slots[entity.SlotMaterial] = "plastic"
		next.Stage = entity.StageIdle
		return StepResult{Next: next, Op: OpTemplate, TemplateKey: TemplatePlasticToy}
	case IntentMaterialFabric:
		next.Slots[entity.SlotMaterial] = "fabric"
		next.Stage = entity.StageIdle
		return StepResult{Next: next, Op: OpTemplate, TemplateKey: TemplateFabricToy}
	default:
		// Stage ve slotlar olduğu gibi kalır
		return StepResult{Next: next, Op: OpReply, Reply: materialRepromptText}
	}
}

func (sm *StateMachine) stepPhilosophy(next *entity.Session, utterance string) StepResult {
	intent, keyword := sm.matcher.ClassifyPhilosophy(utterance)
	if intent != IntentPhilosophy {
		return StepResult{Next: next, Op: OpReply, Reply: philosophyReprompt}
	}

	next.Slots[entity.SlotPhilosophy] = keyword
	next.Stage = entity.StageIdle
	return StepResult{Next: next, Op: OpTemplate, TemplateKey: TemplateWoodToy}
}
