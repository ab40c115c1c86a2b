package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fairmines/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler pushes round events to the session's display layer.
// It is the outbound half of the round interface: status transitions,
// the multiplier after each safe reveal, and the revealed secret at
// settlement all arrive here.
type WebSocketHandler struct {
	hub *WebSocketHub
}

type WebSocketHub struct {
	clients    map[string]*websocket.Conn
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
}

type Client struct {
	SessionID string
	Conn      *websocket.Conn
}

type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"-"`
	Data      interface{} `json:"data"`
}

func NewWebSocketHandler() *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
	}

	go hub.run()

	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sid := sessionID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{
		SessionID: sid,
		Conn:      conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		if msg.Type == "PING" {
			h.push(sid, &Message{
				Type: "PONG",
				Data: gin.H{"timestamp": time.Now().Unix()},
			})
		}
	}
}

func (h *WebSocketHandler) push(sessionID string, msg *Message) {
	msg.SessionID = sessionID
	select {
	case h.hub.broadcast <- msg:
	default:
		// Never let a slow consumer stall the engine.
	}
}

// The following methods implement game.Broadcaster.

func (h *WebSocketHandler) RoundStarted(sessionID string, view *models.CommitmentView) {
	h.push(sessionID, &Message{Type: "ROUND_STARTED", Data: view})
}

func (h *WebSocketHandler) TileRevealed(sessionID string, outcome *models.TileOutcome) {
	h.push(sessionID, &Message{Type: "TILE_REVEALED", Data: outcome})
}

func (h *WebSocketHandler) RoundSettled(sessionID string, view *models.SettlementView) {
	h.push(sessionID, &Message{Type: "ROUND_SETTLED", Data: view})
}

func (h *WebSocketHandler) BalanceChanged(sessionID string, balance float64) {
	h.push(sessionID, &Message{Type: "BALANCE_UPDATE", Data: gin.H{"balance": balance}})
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client.SessionID] = client.Conn
			log.Printf("Client registered: %s", client.SessionID)

		case client := <-hub.unregister:
			if _, ok := hub.clients[client.SessionID]; ok {
				delete(hub.clients, client.SessionID)
				log.Printf("Client unregistered: %s", client.SessionID)
			}

		case message := <-hub.broadcast:
			if conn, ok := hub.clients[message.SessionID]; ok {
				conn.WriteJSON(message)
			}
		}
	}
}
