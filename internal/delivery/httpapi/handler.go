package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/usecase"
)

// Handler HTTP uçlarını diyalog ve tahmin usecase'lerine bağlar
type Handler struct {
	dialog  usecase.DialogUseCase
	predict usecase.PredictUseCase
}

// NewHandler yeni HTTP handler yaratır
func NewHandler(dialog usecase.DialogUseCase, predict usecase.PredictUseCase) *Handler {
	return &Handler{
		dialog:  dialog,
		predict: predict,
	}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// writeError hata tipini HTTP cevabına çevirir: istemci hataları
// (ValidationError, PredictionError) 400, gerisi 500
func writeError(c *gin.Context, err error) {
	var valErr *apperr.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Reason})
		return
	}
	var predErr *apperr.PredictionError
	if errors.As(err, &predErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": predErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "istek işlenemedi"})
}

// Chat POST /chat. session_id boşsa istemci IP'si oturum anahtarı olur.
// Turun ürettiği öneri varsa response alanı Recommendation nesnesidir,
// yoksa düz metin.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.NewValidationError("geçersiz istek gövdesi"))
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = c.ClientIP()
	}

	reply, err := h.dialog.HandleMessage(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	if reply.Recommendation != nil {
		c.JSON(http.StatusOK, gin.H{"response": reply.Recommendation})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply.Text})
}

// Predict POST /predict. Gövde doğrudan özellik map'idir; tahmin
// başarısızsa kısmi cevap yerine 400 döner.
func (h *Handler) Predict(c *gin.Context) {
	var attributes map[string]any
	if err := c.ShouldBindJSON(&attributes); err != nil {
		writeError(c, apperr.NewValidationError("geçersiz istek gövdesi"))
		return
	}

	result, err := h.predict.Predict(c.Request.Context(), attributes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
