package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from a separate origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is a single dashboard connection. The feed is one-way: the server
// pushes events, incoming frames are discarded.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	UserID    string
	ParentUID string
	UserType  string
	send      chan []byte
}

// ServeWs upgrades an authenticated request and attaches the connection to
// the family hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, userID, parentUID, userType string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] upgrade failed for user %s: %v", userID, err)
		return
	}

	client := &Client{
		hub:       hub,
		conn:      conn,
		UserID:    userID,
		ParentUID: parentUID,
		UserType:  userType,
		send:      make(chan []byte, 256),
	}
	hub.Register(client)

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so pongs and close frames are processed,
// and unregisters the client when the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WebSocket] read error for user %s: %v", c.UserID, err)
			}
			break
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
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
