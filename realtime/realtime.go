package realtime

import (
	"sync"

	"api/logger"
	"api/metrics"
	"api/models"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected leaderboard subscribers
	broadcast = make(chan ParticipantUpdate)   // Broadcast channel for updates
	mutex     sync.Mutex                       // Protects the clients map
)

// ParticipantUpdate notifies subscribers that a participant record changed.
// Delivery is best-effort; clients bound staleness with their own polling.
type ParticipantUpdate struct {
	UpdateType  string              `json:"update_type"` // "created", "updated" or "deleted"
	Participant *models.Participant `json:"participant,omitempty"`
	ID          string              `json:"id"`
}

// RegisterClient adds a WebSocket subscriber to the participants feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	metrics.RealtimeClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket subscriber
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	metrics.RealtimeClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// Broadcast sends an update to every connected subscriber
func Broadcast(update ParticipantUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				logger.L.Warnw("websocket write error", "error", err)
				client.Close()
				delete(clients, client)
			}
		}
		metrics.RealtimeClients.Set(float64(len(clients)))
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
