package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/export-advisor-bot/internal/usecase"
)

// BotHandler Telegram kanalını diyalog motoruna bağlar. Oturum anahtarı
// chat ID'dir; sadece özel sohbetlerdeki metin mesajları işlenir.
type BotHandler struct {
	bot    *tgbotapi.BotAPI
	dialog usecase.DialogUseCase
}

// NewBotHandler yeni bot handler yaratır
func NewBotHandler(token string, dialog usecase.DialogUseCase) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot yaratılamadı: %w", err)
	}
	log.Printf("[telegram] bot yetkilendirildi: @%s", bot.Self.UserName)

	return &BotHandler{
		bot:    bot,
		dialog: dialog,
	}, nil
}

// Start long-polling döngüsünü başlatır; context iptaline kadar bloklar
func (h *BotHandler) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if update.Message.Text == "" {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	sessionID := fmt.Sprintf("tg:%d", msg.Chat.ID)

	text := msg.Text
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			h.send(msg.Chat.ID, startText)
			return
		default:
			text = msg.CommandArguments()
			if text == "" {
				return
			}
		}
	}

	reply, err := h.dialog.HandleMessage(ctx, sessionID, text)
	if err != nil {
		log.Printf("[telegram] mesaj işlenemedi (%s): %v", sessionID, err)
		return
	}

	out := reply.Text
	if reply.Recommendation != nil {
		out = usecase.FormatRecommendation(*reply.Recommendation)
	}
	h.send(msg.Chat.ID, out)
}

func (h *BotHandler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("[telegram] mesaj gönderilemedi (%d): %v", chatID, err)
	}
}

const startText = `Merhaba! Ben ihracat danışmanı botuyum.

Ürününüzü yazın; fiyat tahmini yapabilir ve en uygun ihracat pazarlarını önerebilirim. İhracat süreçleriyle ilgili genel sorularınızı da yanıtlarım.`
