package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe     = "subscribe"
	MsgTypeReportUpdate  = "report_update"
	MsgTypeUpvoteUpdate  = "upvote_update"
	MsgTypeCommentUpdate = "comment_update"
)

// Client represents a connected WebSocket user. County is empty until
// the client subscribes; an empty county means receive everything.
type Client struct {
	Conn   *websocket.Conn
	UserID string
	County string
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type    string `json:"type"`
	UserID  string `json:"user_id"`
	County  string `json:"county,omitempty"`
	Content string `json:"content,omitempty"`
}

// Event is the outgoing live-feed payload pushed to subscribers.
type Event struct {
	Type   string      `json:"type"`
	County string      `json:"county,omitempty"`
	Data   interface{} `json:"data"`
}
