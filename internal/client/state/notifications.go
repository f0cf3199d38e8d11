package state

import "time"

// notificationTTL is how long a transient alert stays visible.
const notificationTTL = 5 * time.Second

// Notification levels, matching the alert styles the UI renders.
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Notification is a transient, auto-dismissing message for the user.
type Notification struct {
	Message   string
	Level     string
	ExpiresAt time.Time
}

// notifier keeps the pending notifications of one session.
type notifier struct {
	now   func() time.Time
	items []Notification
}

func (n *notifier) push(message, level string) {
	n.items = append(n.items, Notification{
		Message:   message,
		Level:     level,
		ExpiresAt: n.now().Add(notificationTTL),
	})
}

// active prunes expired notifications and returns the live ones.
func (n *notifier) active() []Notification {
	now := n.now()
	live := n.items[:0]
	for _, item := range n.items {
		if item.ExpiresAt.After(now) {
			live = append(live, item)
		}
	}
	n.items = live

	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
