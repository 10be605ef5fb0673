// Package notify implements the single-slot toast notification sink: one
// visible message at a time, replaced by newer calls, auto-hidden after a
// fixed window.
package notify

import (
	"sync"
	"time"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3 * time.Second

// Notifier owns the notification slot. Each Notify call stamps the slot
// with a token; the delayed hide only fires when its token still matches,
// so a stale timer can never hide a newer message.
type Notifier struct {
	mu       sync.Mutex
	current  models.Notification
	token    uint64
	duration time.Duration
}

// New returns a Notifier with the given visibility window. A non-positive
// duration falls back to DefaultDuration.
func New(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

// Notify replaces the visible notification and restarts the auto-hide
// window. Severity defaults are the caller's concern; use Success/Error for
// the common cases.
func (n *Notifier) Notify(message string, severity models.Severity) {
	n.mu.Lock()
	n.token++
	token := n.token
	n.current = models.Notification{Message: message, Severity: severity, Visible: true}
	n.mu.Unlock()

	time.AfterFunc(n.duration, func() { n.hide(token) })
}

// Success shows a success-severity notification.
func (n *Notifier) Success(message string) {
	n.Notify(message, models.SeveritySuccess)
}

// Error shows an error-severity notification.
func (n *Notifier) Error(message string) {
	n.Notify(message, models.SeverityError)
}

// Current returns the notification slot as of now. Visible is false once
// the window has elapsed or before anything was shown.
func (n *Notifier) Current() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) hide(token uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if token != n.token {
		// A newer notification owns the slot.
		return
	}
	n.current.Visible = false
}
