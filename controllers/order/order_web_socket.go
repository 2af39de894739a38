package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/axis-silicon/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderWebSocket keeps the admin dashboard live: connected clients receive
// every new order and status change as JSON.
func OrderWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

type wsEvent struct {
	Type    string             `json:"type"`
	Order   *models.Order      `json:"order,omitempty"`
	OrderID string             `json:"order_id,omitempty"`
	Status  models.OrderStatus `json:"status,omitempty"`
}

// BroadcastNewOrders pushes each order of a freshly saved batch.
func BroadcastNewOrders(orders []models.Order) {
	for i := range orders {
		broadcast(wsEvent{Type: "order_created", Order: &orders[i]})
	}
}

// BroadcastStatusChange pushes a status overwrite.
func BroadcastStatusChange(orderID string, status models.OrderStatus) {
	broadcast(wsEvent{Type: "status_changed", OrderID: orderID, Status: status})
}

func broadcast(event wsEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(wsClients, client)
		}
	}
}
