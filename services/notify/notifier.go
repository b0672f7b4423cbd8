package notify

import (
	"sync"
	"time"

	"homemate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification is a one-shot user-facing message (the toast of the web UI).
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"` // "success" or "error"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier collects one-shot notifications. A notification is delivered at
// most once: Flush returns the pending set and clears it.
type Notifier interface {
	Success(message string)
	Error(message string)
	Flush() []Notification
}

// DefaultNotifier is the production implementation.
type DefaultNotifier struct {
	mu      sync.Mutex
	pending []Notification
}

func NewDefaultNotifier() *DefaultNotifier {
	return &DefaultNotifier{}
}

func (n *DefaultNotifier) Success(message string) {
	n.push("success", message)
}

func (n *DefaultNotifier) Error(message string) {
	n.push("error", message)
}

func (n *DefaultNotifier) push(level, message string) {
	utils.GetLogger().Debug("notification", zap.String("level", level), zap.String("message", message))
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func (n *DefaultNotifier) Flush() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}
