package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smart-order/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type wsMessage struct {
	Event   string         `json:"event"`
	Payload []models.Order `json:"payload"`
}

// HandleOrderSocket streams order snapshots to a client. Each connection gets
// the current snapshot on connect and a fresh one after every order write.
// Writes share the connection behind a mutex because the store may publish
// while the initial snapshot is still going out.
func HandleOrderSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		var mu sync.Mutex
		send := func(orders []models.Order) {
			data, err := json.Marshal(wsMessage{Event: "orders", Payload: orders})
			if err != nil {
				log.Println("Error marshaling message:", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Println("Error writing message:", err)
			}
		}

		ctx, cancel := requestContext()
		orders, err := dataStore.GetOrders(ctx)
		cancel()
		if err != nil {
			log.Println("Error loading initial orders:", err)
			return
		}
		send(orders)

		unsubscribe := dataStore.SubscribeToOrders(send)
		defer unsubscribe()

		// Drain the read side so we notice the disconnect.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
