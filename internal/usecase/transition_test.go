package usecase

import (
	"testing"

	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

func newMachine() *StateMachine {
	return NewStateMachine(NewKeywordMatcher())
}

func toyProduct() *entity.Product {
	return &entity.Product{
		Name:     "ahşap blok seti",
		Category: "toys",
		Brand:    "Dorbo",
		Country:  "Turkey",
	}
}

func TestIdleCatalogMatchStartsConfirmation(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")

	step := sm.Step(sess, "ahşap blok seti satıyorum", toyProduct())

	if step.Op != OpReply {
		t.Fatalf("beklenen OpReply, gelen %v", step.Op)
	}
	if step.Next.Stage != entity.StageAwaitingPredictionConfirmation {
		t.Errorf("beklenen confirmation stage, gelen %v", step.Next.Stage)
	}
	if step.Next.Product == nil || step.Next.Product.Name != "ahşap blok seti" {
		t.Error("eşleşen ürün oturuma yazılmalı")
	}
	// Girdi oturumu değişmemeli
	if sess.Stage != entity.StageIdle || sess.Product != nil {
		t.Error("Step girdi oturumunu değiştirmemeli")
	}
}

func TestConfirmationAffirmativeRanks(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingPredictionConfirmation
	sess.Product = toyProduct()

	step := sm.Step(sess, "evet", nil)

	if step.Op != OpRank {
		t.Fatalf("beklenen OpRank, gelen %v", step.Op)
	}
	if step.Record == nil || step.Record.Name != "ahşap blok seti" {
		t.Error("sıralanacak kayıt sonuçla dönmeli")
	}
	if step.Next.Stage != entity.StageIdle {
		t.Errorf("onaydan sonra Idle'a dönülmeli, gelen %v", step.Next.Stage)
	}
	if step.Next.Product != nil {
		t.Error("Idle'a dönen oturumda ürün kalmamalı")
	}
}

func TestConfirmationDeclineReturnsToIdle(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingPredictionConfirmation
	sess.Product = toyProduct()

	step := sm.Step(sess, "hayır, istemiyorum", nil)

	if step.Op != OpReply || step.Reply != declineText {
		t.Errorf("ret cevabı bekleniyordu, gelen op=%v reply=%q", step.Op, step.Reply)
	}
	if step.Next.Stage != entity.StageIdle || step.Next.Product != nil {
		t.Error("retten sonra Idle'a dönülmeli, ürün temizlenmeli")
	}
}

func TestToyFlowWoodPhilosophy(t *testing.T) {
	sm := newMachine()

	// Idle: oyuncak kelimesi malzeme sorusunu başlatır
	step := sm.Step(entity.NewSession("s1"), "oyuncak üretiyorum", nil)
	if step.Op != OpReply || step.Reply != materialQuestionText {
		t.Fatalf("malzeme sorusu bekleniyordu, gelen %q", step.Reply)
	}
	if step.Next.Stage != entity.StageAwaitingMaterial {
		t.Fatalf("beklenen material stage, gelen %v", step.Next.Stage)
	}
	if step.Next.Slots[entity.SlotProductType] != "toys" {
		t.Error("product_type slotu toys olmalı")
	}

	// Malzeme: ahşap felsefe sorusuna geçirir
	step = sm.Step(step.Next, "ahşap kullanıyoruz", nil)
	if step.Reply != philosophyQuestion {
		t.Fatalf("felsefe sorusu bekleniyordu, gelen %q", step.Reply)
	}
	if step.Next.Stage != entity.StageAwaitingPhilosophy {
		t.Fatalf("beklenen philosophy stage, gelen %v", step.Next.Stage)
	}
	if step.Next.Slots[entity.SlotMaterial] != "wood" {
		t.Error("material slotu wood olmalı")
	}

	// Felsefe: montessori ahşap şablonunu döndürür
	step = sm.Step(step.Next, "montessori uyumlu", nil)
	if step.Op != OpTemplate || step.TemplateKey != TemplateWoodToy {
		t.Fatalf("ahşap oyuncak şablonu bekleniyordu, gelen op=%v key=%q", step.Op, step.TemplateKey)
	}
	if step.Next.Stage != entity.StageIdle {
		t.Error("şablondan sonra Idle'a dönülmeli")
	}
	if step.Next.Slots[entity.SlotPhilosophy] != "montessori" {
		t.Errorf("philosophy slotu montessori olmalı, gelen %q", step.Next.Slots[entity.SlotPhilosophy])
	}
}

func TestMaterialPlasticShortCircuits(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingMaterial
	sess.Slots[entity.SlotProductType] = "toys"

	step := sm.Step(sess, "plastik", nil)

	if step.Op != OpTemplate || step.TemplateKey != TemplatePlasticToy {
		t.Fatalf("plastik şablonu bekleniyordu, gelen op=%v key=%q", step.Op, step.TemplateKey)
	}
	if step.Next.Stage != entity.StageIdle {
		t.Error("plastik cevabından sonra Idle'a dönülmeli")
	}
}

func TestMaterialRepromptKeepsState(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingMaterial
	sess.Slots[entity.SlotProductType] = "toys"

	// Anlaşılmayan cevap stage'i ve slotları değiştirmez; tekrar tekrar
	// sorulabilir
	for i := 0; i < 2; i++ {
		step := sm.Step(sess, "bilmiyorum", nil)
		if step.Reply != materialRepromptText {
			t.Fatalf("reprompt bekleniyordu, gelen %q", step.Reply)
		}
		if step.Next.Stage != entity.StageAwaitingMaterial {
			t.Fatal("reprompt stage'i değiştirmemeli")
		}
		if step.Next.Slots[entity.SlotProductType] != "toys" {
			t.Fatal("reprompt slotları silmemeli")
		}
		sess = step.Next
	}
}

func TestPhilosophyRepromptKeepsState(t *testing.T) {
	sm := newMachine()
	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingPhilosophy
	sess.Slots[entity.SlotMaterial] = "wood"

	step := sm.Step(sess, "ne demek istediğini anlamadım", nil)

	if step.Reply != philosophyReprompt {
		t.Fatalf("reprompt bekleniyordu, gelen %q", step.Reply)
	}
	if step.Next.Stage != entity.StageAwaitingPhilosophy {
		t.Error("reprompt stage'i değiştirmemeli")
	}
}

func TestIdleSectorTemplate(t *testing.T) {
	sm := newMachine()

	step := sm.Step(entity.NewSession("s1"), "zeytinyağı ihraç etmek istiyorum", nil)

	if step.Op != OpTemplate || step.TemplateKey != TemplateOliveOil {
		t.Fatalf("zeytinyağı şablonu bekleniyordu, gelen op=%v key=%q", step.Op, step.TemplateKey)
	}
	if step.Next.Stage != entity.StageIdle {
		t.Error("sektör şablonu stage değiştirmemeli")
	}
}

func TestIdleUnknownFallsToLLM(t *testing.T) {
	sm := newMachine()

	step := sm.Step(entity.NewSession("s1"), "gümrük vergisi nasıl hesaplanır?", nil)

	if step.Op != OpLLM {
		t.Fatalf("beklenen OpLLM, gelen %v", step.Op)
	}
	if step.Next.Stage != entity.StageIdle {
		t.Error("LLM fallback stage değiştirmemeli")
	}
}
