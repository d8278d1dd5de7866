package entity

import "time"

// Stage sohbetin hangi adımda olduğunu gösterir
type Stage int

const (
	StageIdle Stage = iota
	StageAwaitingPredictionConfirmation
	StageAwaitingMaterial
	StageAwaitingPhilosophy
)

// String log satırları için okunabilir stage adı
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAwaitingPredictionConfirmation:
		return "awaiting_prediction_confirmation"
	case StageAwaitingMaterial:
		return "awaiting_material"
	case StageAwaitingPhilosophy:
		return "awaiting_philosophy"
	default:
		return "unknown"
	}
}

// Slot isimleri
const (
	SlotProductType = "product_type"
	SlotMaterial    = "material"
	SlotPhilosophy  = "philosophy"
)

// Session bir sohbet oturumunun durumu. Dialog state machine dışında
// kimse okuyup yazmaz.
type Session struct {
	ID        string            `json:"id"`
	Stage     Stage             `json:"stage"`
	Slots     map[string]string `json:"slots"`
	Product   *Product          `json:"product,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession boş slotlarla Idle durumda yeni oturum yaratır
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Stage:     StageIdle,
		Slots:     make(map[string]string),
		UpdatedAt: time.Now(),
	}
}

// Clone oturumun bağımsız kopyasını döndürür (pure transition için)
func (s *Session) Clone() *Session {
	cp := *s
	cp.Slots = make(map[string]string, len(s.Slots))
	for k, v := range s.Slots {
		cp.Slots[k] = v
	}
	if s.Product != nil {
		p := *s.Product
		cp.Product = &p
	}
	return &cp
}
