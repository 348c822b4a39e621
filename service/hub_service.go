package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/gorilla/websocket"
)

const (
	subscriberSendBuffer = 16
	subscriberReadLimit  = 512 * 1024
	subscriberReadWait   = 60 * time.Second
)

type subscriber struct {
	conn *websocket.Conn
	send chan types.WebSocketResponse
}

// BroadcastHub maintains the live subscriber set. Delivery is at-most-once
// and best-effort: pushes reach whoever is connected at push time, and a
// subscriber that cannot keep up is dropped rather than awaited.
type BroadcastHub struct {
	notifications *repository.NotificationRepo
	upgrader      websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

func NewBroadcastHub(notifications *repository.NotificationRepo) *BroadcastHub {
	return &BroadcastHub{
		notifications: notifications,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
		subscribers: make(map[*subscriber]struct{}),
	}
}

// HandleSubscribe upgrades the connection, pushes the unread-count snapshot
// and holds the connection open until the client goes away.
func (h *BroadcastHub) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	conn.SetReadLimit(subscriberReadLimit)
	conn.SetReadDeadline(time.Now().Add(subscriberReadWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(subscriberReadWait))
		return nil
	})

	sub := &subscriber{
		conn: conn,
		send: make(chan types.WebSocketResponse, subscriberSendBuffer),
	}

	// Initial-state sync: a fresh subscriber gets the current unread count,
	// never historical notification payloads. Enqueued before the subscriber
	// becomes visible to broadcasts, so nothing can have closed the send
	// channel yet and the snapshot always precedes any pushed event.
	sub.send <- types.WebSocketResponse{
		Type:    types.TypeWebsocketUnreadCount,
		Payload: types.UnreadCountPayload{Count: h.notifications.UnreadCount()},
	}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	go h.writePump(sub)
	h.readPump(sub)
}

// readPump drains client frames until the connection dies; subscribers never
// send anything the hub acts on.
func (h *BroadcastHub) readPump(sub *subscriber) {
	defer func() {
		h.unregister(sub)
		sub.conn.Close()
	}()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

func (h *BroadcastHub) writePump(sub *subscriber) {
	// Covers both exits: a write failure and a closed send channel after the
	// subscriber was dropped.
	defer sub.conn.Close()
	for msg := range sub.send {
		if err := sub.conn.WriteJSON(msg); err != nil {
			log.Println("Write error:", err)
			h.unregister(sub)
			return
		}
	}
}

// unregister removes the subscriber and closes its send channel exactly once.
func (h *BroadcastHub) unregister(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.send)
	}
}

// Publish pushes the notification payload to every connected subscriber,
// then the recomputed unread count.
func (h *BroadcastHub) Publish(n types.Notification) {
	h.broadcast(types.WebSocketResponse{
		Type:    types.TypeWebsocketNotification,
		Payload: n,
	})
	h.broadcastUnreadCount()
}

// NotifyRead pushes only the refreshed unread count.
func (h *BroadcastHub) NotifyRead() {
	h.broadcastUnreadCount()
}

func (h *BroadcastHub) broadcastUnreadCount() {
	h.broadcast(types.WebSocketResponse{
		Type:    types.TypeWebsocketUnreadCount,
		Payload: types.UnreadCountPayload{Count: h.notifications.UnreadCount()},
	})
}

func (h *BroadcastHub) broadcast(msg types.WebSocketResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- msg:
		default:
			// A full buffer means the subscriber stopped draining; drop it
			// so it cannot block the others.
			delete(h.subscribers, sub)
			close(sub.send)
			sub.conn.Close()
		}
	}
}
