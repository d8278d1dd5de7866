package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/export-advisor-bot/internal/domain/constants"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
)

// ChatReply bir sohbet turunun sonucu: düz metin ya da yapılandırılmış
// öneri. İkisi aynı anda dolu olmaz.
type ChatReply struct {
	Text           string
	Recommendation *entity.Recommendation
}

// DialogUseCase sohbet turlarını işleyen ana akış
type DialogUseCase interface {
	// HandleMessage bir kullanıcı mesajını işler ve yanıtı döndürür.
	// Oturum başına aynı anda tek tur çalışır.
	HandleMessage(ctx context.Context, sessionID, text string) (*ChatReply, error)
}

type dialogUseCase struct {
	sessionRepo repository.SessionRepository
	productRepo repository.ProductRepository
	aiRepo      repository.AIRepository
	chatLog     repository.ChatLogRepository // opsiyonel, nil olabilir
	ranker      *CountryRanker
	machine     *StateMachine
	llmTimeout  time.Duration
}

// NewDialogUseCase yeni DialogUseCase yaratır. chatLog nil geçilebilir.
func NewDialogUseCase(
	sessionRepo repository.SessionRepository,
	productRepo repository.ProductRepository,
	aiRepo repository.AIRepository,
	model repository.PriceModel,
	chatLog repository.ChatLogRepository,
) DialogUseCase {
	return &dialogUseCase{
		sessionRepo: sessionRepo,
		productRepo: productRepo,
		aiRepo:      aiRepo,
		chatLog:     chatLog,
		ranker:      NewCountryRanker(model),
		machine:     NewStateMachine(NewKeywordMatcher()),
		llmTimeout:  constants.LLMTimeout * time.Second,
	}
}

// HandleMessage tek sohbet turu. Boş mesaj oturum durumuna dokunmadan
// sabit metinle döner.
func (u *dialogUseCase) HandleMessage(ctx context.Context, sessionID, text string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return &ChatReply{Text: constants.EmptyMessageText}, nil
	}

	release := u.sessionRepo.Acquire(sessionID)
	defer release()

	sess, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session okunamadı: %w", err)
	}

	// Katalog eşleşmesi sadece Idle'da aranır
	var match *entity.Product
	if sess.Stage == entity.StageIdle {
		match, err = u.productRepo.FindByUtterance(ctx, strings.ToLower(text))
		if err != nil {
			log.Printf("[dialog] katalog araması başarısız session=%s err=%v", sessionID, err)
			match = nil
		}
	}

	step := u.machine.Step(sess, text, match)
	reply, commit := u.execute(ctx, sessionID, text, step)

	if commit {
		if err := u.sessionRepo.Put(ctx, step.Next); err != nil {
			return nil, fmt.Errorf("session yazılamadı: %w", err)
		}
	}

	u.logTurn(sessionID, text, reply)
	return reply, nil
}

// execute state machine'in istediği etkiyi yürütür. İkinci dönüş değeri
// yeni oturum durumunun kaydedilip kaydedilmeyeceği: LLM hatasında oturum
// olduğu gibi bırakılır, kullanıcı tekrar deneyebilsin.
func (u *dialogUseCase) execute(ctx context.Context, sessionID, text string, step StepResult) (*ChatReply, bool) {
	switch step.Op {
	case OpRank:
		return u.executeRank(ctx, sessionID, step), true

	case OpTemplate:
		rec, ok := LookupTemplate(step.TemplateKey)
		if !ok {
			log.Printf("[dialog] bilinmeyen şablon anahtarı %q session=%s", step.TemplateKey, sessionID)
			return &ChatReply{Text: cannotIdentifyText}, true
		}
		return &ChatReply{Recommendation: &rec}, true

	case OpLLM:
		// Çağrı tur kilidinin içinde koşar; üst sınır olmadan asılı bir
		// upstream bu oturumun kilidini süresiz tutar
		llmCtx, cancel := context.WithTimeout(ctx, u.llmTimeout)
		defer cancel()
		answer, err := u.aiRepo.GenerateReply(llmCtx, text)
		if err != nil {
			log.Printf("[dialog] LLM fallback başarısız session=%s err=%v", sessionID, err)
			return &ChatReply{Text: constants.LLMApologyText}, false
		}
		return &ChatReply{Text: answer}, true

	default:
		return &ChatReply{Text: step.Reply}, true
	}
}

func (u *dialogUseCase) executeRank(ctx context.Context, sessionID string, step StepResult) *ChatReply {
	record := step.Record
	candidates := CandidateCountries(ctx, u.productRepo)
	ranked := u.ranker.Rank(record.Attributes(), candidates, constants.TopCountries)

	if len(ranked) == 0 {
		log.Printf("[dialog] hiçbir ülke için tahmin üretilemedi session=%s product=%s", sessionID, record.Name)
		return &ChatReply{Text: fmt.Sprintf("Üzgünüm, %q için şu anda güvenilir bir fiyat tahmini üretemedim.", record.Name)}
	}

	rec := entity.Recommendation{
		Headline:   fmt.Sprintf("%q için en çok potansiyel barındıran ülkeler:", record.Name),
		HSCodeInfo: "NLP analizi devam ediyor...",
		Countries:  ranked,
		Reason:     "Sıralama, ürün özellikleri sabit tutulup ülke değiştirilerek yapılan model tahminlerine dayanır.",
	}
	return &ChatReply{Recommendation: &rec}
}

// logTurn transkripti asenkron kaydeder; sohbet akışını asla bloklamaz
func (u *dialogUseCase) logTurn(sessionID, userText string, reply *ChatReply) {
	if u.chatLog == nil {
		return
	}

	botText := ""
	if reply != nil {
		if reply.Recommendation != nil {
			botText = FormatRecommendation(*reply.Recommendation)
		} else {
			botText = reply.Text
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		now := time.Now()
		if err := u.chatLog.Save(ctx, entity.ChatMessage{
			ID:        uuid.New().String(),
			SessionID: sessionID,
			Direction: "user",
			Text:      userText,
			CreatedAt: now,
		}); err != nil {
			log.Printf("[chatlog] user mesajı kaydedilemedi: %v", err)
		}
		if botText == "" {
			return
		}
		if err := u.chatLog.Save(ctx, entity.ChatMessage{
			ID:        uuid.New().String(),
			SessionID: sessionID,
			Direction: "bot",
			Text:      botText,
			CreatedAt: now,
		}); err != nil {
			log.Printf("[chatlog] bot yanıtı kaydedilemedi: %v", err)
		}
	}()
}

// FormatRecommendation öneriyi düz metne çevirir (Telegram ve transkript
// için)
func FormatRecommendation(rec entity.Recommendation) string {
	var b strings.Builder
	b.WriteString(rec.Headline)
	b.WriteString("\n")
	b.WriteString(rec.HSCodeInfo)
	b.WriteString("\n\n")
	for i, c := range rec.Countries {
		b.WriteString(fmt.Sprintf("%d. %s - %.2f$ (%s)\n", i+1, c.Country, c.PredictedPrice, c.Reason))
	}
	b.WriteString("\n")
	b.WriteString(rec.Reason)
	return b.String()
}
