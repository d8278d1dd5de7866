package entity

import "time"

// ChatMessage transkript kaydı için tek bir sohbet satırı
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Direction string    `json:"direction"` // "user" veya "bot"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
