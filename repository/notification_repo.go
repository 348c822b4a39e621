package repository

import (
	"sync"

	"github.com/NikhilBollineni/newsproject/types"
)

// NotificationRepo holds notifications in memory. Delivery to subscribers is
// best-effort while connected, so there is no durable backing log.
type NotificationRepo struct {
	mu            sync.RWMutex
	notifications []types.Notification
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

func (r *NotificationRepo) Create(n types.Notification) types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
	return n
}

// List returns notifications, newest first.
func (r *NotificationRepo) List() []types.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Notification, len(r.notifications))
	for i, n := range r.notifications {
		out[len(r.notifications)-1-i] = n
	}
	return out
}

// MarkRead flips read to true. The transition is one-way; marking an already
// read notification is a no-op, not an error.
func (r *NotificationRepo) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (r *NotificationRepo) UnreadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
