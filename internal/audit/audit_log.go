package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSaleRegistered       EventType = "sale_registered"
	EventManualSaleRegistered EventType = "manual_sale_registered"
	EventDraw                 EventType = "draw"
	EventDuplicateDetected    EventType = "duplicate_detected"
	EventResetRequested       EventType = "reset_requested"
	EventResetCompleted       EventType = "reset_completed"
	EventResetRejected        EventType = "reset_rejected"
)

// Event 一筆稽核紀錄
type Event struct {
	ID     string    `json:"id"`
	Type   EventType `json:"type"`
	Sheet  string    `json:"sheet"`
	Actor  string    `json:"actor,omitempty"`
	Number int       `json:"number,omitempty"`
	Seller string    `json:"seller,omitempty"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// NewEvent 補上 ID 與時間
func NewEvent(eventType EventType, sheet string) Event {
	return Event{
		ID:    uuid.NewString(),
		Type:  eventType,
		Sheet: sheet,
		At:    time.Now().UTC(),
	}
}

type AuditLog interface {
	// 寫入一筆稽核紀錄
	Record(ctx context.Context, event Event) error
	// 讀取最近 n 筆（新到舊）
	Recent(ctx context.Context, n int) ([]Event, error)
}

type MemoryAuditLogImpl struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

func NewMemoryAuditLog(limit int) AuditLog {
	if limit <= 0 {
		limit = 1000
	}
	return &MemoryAuditLogImpl{limit: limit}
}

func (l *MemoryAuditLogImpl) Record(ctx context.Context, event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
	if over := len(l.events) - l.limit; over > 0 {
		l.events = append([]Event(nil), l.events[over:]...)
	}
	return nil
}

func (l *MemoryAuditLogImpl) Recent(ctx context.Context, n int) ([]Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, 0, n)
	for i := len(l.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.events[i])
	}
	return out, nil
}
