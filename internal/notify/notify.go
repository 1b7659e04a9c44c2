package notify

import (
	"sync"
	"time"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

// DefaultTTL is how long a toast stays visible before it clears itself.
const DefaultTTL = 3 * time.Second

// Notifier holds the single pending toast. A new message replaces the
// current one and restarts the expiry clock; the previous timer is
// stopped so a stale timer can never clear a newer message early.
type Notifier struct {
	mu      sync.Mutex
	current *models.Notification
	timer   *time.Timer
	ttl     time.Duration
}

// New creates a Notifier with the given expiry. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Notify sets the pending toast and schedules its removal.
func (n *Notifier) Notify(message string, kind models.NotificationKind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	toast := &models.Notification{Message: message, Kind: kind}
	n.current = toast
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// Only clear if nothing replaced us in the meantime.
		if n.current == toast {
			n.current = nil
		}
	})
}

// Current returns the pending toast, or nil if it has expired.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	copied := *n.current
	return &copied
}
