// Package chat implements the live update channel for response threads.
// Polling the message list remains the baseline contract; the hub pushes the
// same messages to WebSocket subscribers of a thread as they are stored.
package chat

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// Hub fans stored messages out to the WebSocket subscribers of each response
// thread. Rooms are keyed by response ID.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage

	// rooms is owned by the Run goroutine; no lock needed.
	rooms map[int]map[*Client]bool
}

type roomMessage struct {
	responseID int
	payload    []byte
}

// NewHub creates a Hub. Call Run in a goroutine before serving connections.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomMessage),
		rooms:      make(map[int]map[*Client]bool),
	}
}

// Run processes subscriptions and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			room, ok := h.rooms[client.responseID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.responseID] = room
			}
			room[client] = true

		case client := <-h.unregister:
			if room, ok := h.rooms[client.responseID]; ok {
				if _, subscribed := room[client]; subscribed {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.responseID)
					}
				}
			}

		case msg := <-h.broadcast:
			for client := range h.rooms[msg.responseID] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer: drop it rather than block the hub.
					close(client.send)
					delete(h.rooms[msg.responseID], client)
				}
			}
		}
	}
}

// Publish sends payload to every subscriber of the given response thread.
func (h *Hub) Publish(responseID int, payload []byte) {
	h.broadcast <- roomMessage{responseID: responseID, payload: payload}
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Client is one WebSocket subscriber of a response thread.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	responseID int
	send       chan []byte
}

// Subscribe registers a connection to a thread and starts its read/write
// pumps. It returns immediately; the pumps own the connection from here on.
func (h *Hub) Subscribe(conn *websocket.Conn, responseID int) {
	client := &Client{
		hub:        h,
		conn:       conn,
		responseID: responseID,
		send:       make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// Subscribers only listen; inbound frames are drained for
		// control-message handling and discarded.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("chat socket closed", "response_id", c.responseID, "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
