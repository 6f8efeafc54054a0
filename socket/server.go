package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// EventRoom names the broadcast room for one event's live engagement feed.
func EventRoom(eventID string) string {
	return "event:" + eventID
}

// NewSocketServer initializes and returns a new Socket.IO server.
// Clients join per-event rooms and receive "engagementUpdate" broadcasts
// whenever a reaction or comment is stored for that event.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, eventID string) {
		if eventID == "" {
			log.Println("❌ Invalid eventId in join request")
			return
		}
		log.Printf("👥 Client %s joined event %s\n", c.ID(), eventID)
		c.Join(EventRoom(eventID))
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, eventID string) {
		if eventID == "" {
			return
		}
		c.Leave(EventRoom(eventID))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("⚠️ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}
