package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	broadcastBuffer = 256
	clientBuffer    = 64
)

// ChatAppender is the slice of the chat use case the hub needs to persist
// frames received over a socket before fanning them out.
type ChatAppender interface {
	AppendMessage(ctx context.Context, chatID string, in usecase.AppendMessageInput) (entities.Message, error)
}

type event struct {
	chatID  string
	payload []byte
}

// Hub fans committed chat messages out to the live subscribers of each chat
// room. It holds no authoritative state: a dropped event is recovered by the
// client replaying history through the HTTP transcript endpoint.
type Hub struct {
	rooms      map[string]map[*Client]bool
	broadcast  chan event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	chatService ChatAppender
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	chatID string
	userID string
	role   entities.ActorRole
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the storefront origins once they are fixed.
		return true
	},
}

func NewHub() *Hub {
	hub := &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan event, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
	go hub.run()
	return hub
}

// SetChatService wires the append path after the use cases are built. The hub
// is constructed first because the use cases need it as their broadcaster.
func (h *Hub) SetChatService(svc ChatAppender) {
	h.chatService = svc
}

// Broadcast implements the message fan-out. It never blocks the caller: when
// the hub is saturated the event is dropped and clients catch up via history.
func (h *Hub) Broadcast(chatID string, m entities.Message) {
	payload, err := json.Marshal(toWireMessage(m))
	if err != nil {
		log.Printf("[ws][hub] marshal failed chat_id=%s message_id=%s err=%v", chatID, m.ID, err)
		return
	}
	select {
	case h.broadcast <- event{chatID: chatID, payload: payload}:
	default:
		log.Printf("[ws][hub] broadcast buffer full, dropping event chat_id=%s message_id=%s", chatID, m.ID)
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.chatID]; !ok {
				h.rooms[client.chatID] = make(map[*Client]bool)
			}
			h.rooms[client.chatID][client] = true
			count := len(h.rooms[client.chatID])
			h.mu.Unlock()
			log.Printf("[ws][hub] client connected chat_id=%s user_id=%s clients=%d", client.chatID, client.userID, count)

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.chatID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.chatID)
					}
				}
			}
			h.mu.Unlock()
			log.Printf("[ws][hub] client disconnected chat_id=%s user_id=%s", client.chatID, client.userID)

		case ev := <-h.broadcast:
			h.mu.Lock()
			room := h.rooms[ev.chatID]
			for client := range room {
				select {
				case client.send <- ev.payload:
				default:
					// Slow consumer. Drop it rather than stall the room.
					close(client.send)
					delete(room, client)
					log.Printf("[ws][hub] send buffer full, unregistering chat_id=%s user_id=%s", client.chatID, client.userID)
				}
			}
			if len(room) == 0 {
				delete(h.rooms, ev.chatID)
			}
			h.mu.Unlock()
		}
	}
}

// ServeWS upgrades the request and subscribes it to the chat room. The caller
// must have already authorized userID as a participant of chatID.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request, chatID, userID string, role entities.ActorRole) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws][hub] upgrade failed chat_id=%s user_id=%s err=%v", chatID, userID, err)
		return
	}

	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, clientBuffer),
		chatID: chatID,
		userID: userID,
		role:   role,
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

type wireOffer struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type wireMessage struct {
	ID          string     `json:"id"`
	ChatID      string     `json:"chat_id"`
	SenderID    string     `json:"sender_id"`
	SenderRole  string     `json:"sender_role"`
	Message     string     `json:"message"`
	MessageType string     `json:"message_type"`
	Offer       *wireOffer `json:"offer,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

func toWireMessage(m entities.Message) wireMessage {
	out := wireMessage{
		ID:          m.ID,
		ChatID:      m.ChatID,
		SenderID:    m.SenderID,
		SenderRole:  string(m.SenderRole),
		Message:     m.Message,
		MessageType: string(m.MessageType),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if m.Offer != nil {
		out.Offer = &wireOffer{Price: m.Offer.Price, Quantity: m.Offer.Quantity}
	}
	return out
}

type incomingFrame struct {
	Type    string     `json:"type"`
	Message string     `json:"message"`
	Offer   *wireOffer `json:"offer"`
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[ws][hub] read failed chat_id=%s user_id=%s err=%v", c.chatID, c.userID, err)
			}
			break
		}

		if c.hub.chatService == nil {
			c.sendError("chat service unavailable")
			continue
		}

		var frame incomingFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.sendError("invalid frame")
			continue
		}

		in := usecase.AppendMessageInput{
			SenderID:    c.userID,
			SenderRole:  c.role,
			Message:     frame.Message,
			MessageType: entities.MessageType(frame.Type),
		}
		if frame.Offer != nil {
			in.Offer = &entities.OfferDetails{Price: frame.Offer.Price, Quantity: frame.Offer.Quantity}
		}

		// The use case broadcasts the committed message back through the hub,
		// so the sender sees its own entry in commit order like everyone else.
		if _, err := c.hub.chatService.AppendMessage(context.Background(), c.chatID, in); err != nil {
			log.Printf("[ws][hub] append failed chat_id=%s user_id=%s err=%v", c.chatID, c.userID, err)
			c.sendError(err.Error())
		}
	}
}

func (c *Client) sendError(msg string) {
	b, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
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
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("[ws][hub] write failed chat_id=%s user_id=%s err=%v", c.chatID, c.userID, err)
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
