package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches an upgraded connection to the hub and blocks until the
// peer goes away.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, sendBuffer)}
	if !hub.registerClient(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
