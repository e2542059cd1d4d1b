package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for game updates
// @Description  Connect via WebSocket to receive real-time game state updates
// @Tags         websocket
// @Router       /ws/game [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// broadcastState pushes a typed event plus a fresh game-state snapshot to
// every connected client. State load failures only cost a missed push; the
// clients reconcile on the next event.
func broadcastState(hub *ws.Hub, players *services.PlayerService, event string) {
	state, err := players.GameState()
	if err != nil {
		log.Printf("ws: state snapshot failed: %v", err)
		return
	}
	hub.Broadcast(ws.WSMessage{Type: event, Data: state})
}

// operatorActor resolves the authenticated console account into the
// name/uid pair the audit log records for admin actions.
func operatorActor(c *gin.Context, auth *services.AuthService) (string, string) {
	accountID := c.GetUint("account_id")
	name := auth.AccountName(accountID)
	return name, fmt.Sprintf("operator:%d", accountID)
}
