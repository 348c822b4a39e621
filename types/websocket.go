package types

const (
	TypeWebsocketNotification = "notification"
	TypeWebsocketUnreadCount  = "unread_count"
)

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type UnreadCountPayload struct {
	Count int `json:"count"`
}
