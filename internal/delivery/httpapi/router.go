package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter gin router'ını kurar. Tarayıcı tabanlı istemciler için
// CORS açık; kimlik doğrulama bilinçli olarak kapsam dışı.
func NewRouter(handler *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handler.Health)
	r.POST("/chat", handler.Chat)
	r.POST("/predict", handler.Predict)

	return r
}
