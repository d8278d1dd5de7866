package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/domain/constants"
	"github.com/yourusername/export-advisor-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient yeni Gemini client yaratır ve danışman system
// instruction'ı ile yapılandırır
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client yaratılamadı: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)

	// Tutarlı, az dağılan cevaplar için düşük sıcaklık
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(AdvisorInstruction)},
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateReply serbest sohbet cevabı üretir. Geçici hatalarda
// MaxRetries kadar dener, aralarda RetryDelay bekler; context iptali
// beklemeyi keser. Tüm denemeler tükenirse UpstreamError döner.
func (g *geminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= constants.MaxRetries; attempt++ {
		log.Printf("[gemini] istek gönderiliyor (deneme %d/%d)", attempt, constants.MaxRetries)

		resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			log.Printf("[gemini] deneme %d başarısız: %v", attempt, err)
			if err := g.waitRetry(ctx, attempt); err != nil {
				return "", err
			}
			continue
		}

		if len(resp.Candidates) == 0 {
			lastErr = fmt.Errorf("cevap adayı yok")
			log.Printf("[gemini] deneme %d: cevap adayı yok", attempt)
			if err := g.waitRetry(ctx, attempt); err != nil {
				return "", err
			}
			continue
		}

		if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			log.Printf("[gemini] cevap güvenlik filtresine takıldı")
			return constants.LLMApologyText, nil
		}

		text := extractText(resp)
		if strings.TrimSpace(text) == "" {
			lastErr = fmt.Errorf("boş cevap")
			log.Printf("[gemini] deneme %d: boş cevap döndü", attempt)
			if err := g.waitRetry(ctx, attempt); err != nil {
				return "", err
			}
			continue
		}

		return text, nil
	}

	log.Printf("[gemini] %d denemenin tamamı başarısız", constants.MaxRetries)
	return "", apperr.NewUpstreamError("gemini", lastErr)
}

// waitRetry deneme araları; son denemeden sonra beklemez
func (g *geminiClient) waitRetry(ctx context.Context, attempt int) error {
	if attempt >= constants.MaxRetries {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(constants.RetryDelay * time.Second):
		return nil
	}
}

// extractText cevabın tüm text parçalarını birleştirir
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

// Close client'ı kapatır
func (g *geminiClient) Close() error {
	return g.client.Close()
}
