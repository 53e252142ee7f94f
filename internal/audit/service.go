package audit

import (
	"encoding/json"
	"sync"
	"time"

	"backoffice-backend/internal/models"

	"github.com/google/uuid"
)

type LogOptions struct {
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Trail katalog mutasyonlarının bellek içi izi. Kapasite dolunca en eski
// kayıt düşer; kalıcı saklama bu örneğin kapsamı dışında.
type Trail struct {
	mu   sync.Mutex
	logs []models.AuditLog
	max  int
}

func NewTrail(max int) *Trail {
	if max <= 0 {
		max = 500
	}
	return &Trail{max: max}
}

func (t *Trail) Write(opts LogOptions) models.AuditLog {
	// Boş snapshot yerine "null" JSON kullanıyoruz
	beforeData := json.RawMessage("null")
	afterData := json.RawMessage("null")

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeData = b
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterData = b
		}
	}

	entry := models.AuditLog{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeData,
		AfterData:   afterData,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.logs = append(t.logs, entry)
	if len(t.logs) > t.max {
		t.logs = t.logs[len(t.logs)-t.max:]
	}
	return entry
}

// List kayıtları en yeniden eskiye döndürür.
func (t *Trail) List() []models.AuditLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.AuditLog, 0, len(t.logs))
	for i := len(t.logs) - 1; i >= 0; i-- {
		out = append(out, t.logs[i])
	}
	return out
}
