package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsClientsMu sync.Mutex
	wsClients   = make(map[*websocket.Conn]bool)
)

// GET /orders/ws — restaurant dashboards subscribe here for live order updates.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsClientsMu.Lock()
	wsClients[conn] = true
	wsClientsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsClientsMu.Lock()
			delete(wsClients, conn)
			wsClientsMu.Unlock()
			break
		}
	}
}

func broadcastOrder(order *models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

// BroadcastOrderUpdate pushes the current state of an order to all connected
// dashboards. Used by the payment callback after a verified transition.
func BroadcastOrderUpdate(db *gorm.DB, orderID uint) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return
	}
	broadcastOrder(&order)
}
