package websockets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestClient(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func subscribe(t *testing.T, conn *websocket.Conn, userID, county string) {
	t.Helper()

	msg, err := json.Marshal(Message{Type: MsgTypeSubscribe, UserID: userID, County: county})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, msg))
}

func TestBroadcastUpdateFiltersByCounty(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	server := httptest.NewServer(http.HandlerFunc(manager.HandleConnections))
	defer server.Close()

	nairobi := dialTestClient(t, server.URL)
	mombasa := dialTestClient(t, server.URL)
	firehose := dialTestClient(t, server.URL)

	subscribe(t, nairobi, "user-1", "Nairobi")
	subscribe(t, mombasa, "user-2", "Mombasa")
	subscribe(t, firehose, "user-3", "")

	// Give the manager a moment to process registrations and filters.
	time.Sleep(100 * time.Millisecond)

	payload := []byte(`{"type":"report_update","county":"Nairobi"}`)
	manager.BroadcastUpdate(payload, "Nairobi")

	nairobi.SetReadDeadline(time.Now().Add(time.Second))
	_, got, err := nairobi.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	firehose.SetReadDeadline(time.Now().Add(time.Second))
	_, got, err = firehose.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	mombasa.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = mombasa.ReadMessage()
	assert.Error(t, err, "client in another county should not receive the event")
}

func TestBroadcastUpdateEvictsDeadConnections(t *testing.T) {
	manager := NewWebSocketManager()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		manager.mu.Lock()
		manager.clients[conn] = &Client{Conn: conn}
		manager.mu.Unlock()
		conn.Close()
	}))
	defer server.Close()

	dialTestClient(t, server.URL)

	require.Eventually(t, func() bool {
		manager.mu.Lock()
		defer manager.mu.Unlock()
		return len(manager.clients) == 1
	}, time.Second, 10*time.Millisecond)

	manager.BroadcastUpdate([]byte(`{"type":"report_update"}`), "")

	manager.mu.Lock()
	defer manager.mu.Unlock()
	assert.Empty(t, manager.clients, "dead connection should be dropped on write failure")
}

func TestBroadcastUpdateWithoutCountyReachesEveryone(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	server := httptest.NewServer(http.HandlerFunc(manager.HandleConnections))
	defer server.Close()

	client := dialTestClient(t, server.URL)
	subscribe(t, client, "user-1", "Kisumu")
	time.Sleep(100 * time.Millisecond)

	payload := []byte(`{"type":"comment_update"}`)
	manager.BroadcastUpdate(payload, "")

	client.SetReadDeadline(time.Now().Add(time.Second))
	_, got, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
