package chat

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestHub serves the hub over a test server and dials one subscriber into
// the given thread. It returns once the subscription is registered, so a
// following Publish is guaranteed to reach the connection.
func dialTestHub(t *testing.T, hub *Hub, responseID int) *websocket.Conn {
	t.Helper()

	subscribed := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.URL.Query().Get("response_id"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// Subscribe returns only after the hub has registered the client.
		hub.Subscribe(conn, id)
		close(subscribed)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?response_id=" + strconv.Itoa(responseID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	select {
	case <-subscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not registered")
	}
	return conn
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestHub(t, hub, 7)

	hub.Publish(7, []byte(`{"type":"message","data":{"id":1}}`))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(payload) != `{"type":"message","data":{"id":1}}` {
		t.Errorf("unexpected payload %s", payload)
	}
}

func TestHub_RoomsAreIsolated(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	seven := dialTestHub(t, hub, 7)
	eight := dialTestHub(t, hub, 8)

	hub.Publish(8, []byte("for-eight"))

	_ = eight.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := eight.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(payload) != "for-eight" {
		t.Errorf("unexpected payload %s", payload)
	}

	// The thread-7 subscriber must not see it.
	_ = seven.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := seven.ReadMessage(); err == nil {
		t.Error("expected no message on the other thread")
	}
}

func TestHub_MultipleSubscribersSameThread(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := dialTestHub(t, hub, 7)
	second := dialTestHub(t, hub, 7)

	hub.Publish(7, []byte("hello"))

	for i, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("subscriber %d read: %v", i, err)
		}
		if string(payload) != "hello" {
			t.Errorf("subscriber %d: unexpected payload %s", i, payload)
		}
	}
}

func TestHub_PublishToEmptyRoomDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	done := make(chan struct{})
	go func() {
		hub.Publish(99, []byte("nobody-home"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish to an empty room blocked")
	}
}
