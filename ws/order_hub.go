package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pos-backend/entity"
	"pos-backend/pkg/logger"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order events to connected kitchen and counter screens. Each
// connection only receives orders that its role is allowed to list.
type OrderHub struct {
	clients    map[*websocket.Conn]*subscriber
	broadcast  chan OrderEvent
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	log        *logger.Logger
}

// Subscription is one websocket connection of an authenticated user.
type Subscription struct {
	Conn   *websocket.Conn
	Role   entity.Role
	UserID string
}

// OrderEvent is the message written to subscribers.
type OrderEvent struct {
	Event string       `json:"event"`
	Order entity.Order `json:"order"`
}

// subscriber owns the outgoing queue of one connection. Only Run closes send.
type subscriber struct {
	conn  *websocket.Conn
	scope services.OrderScope
	send  chan OrderEvent
}

const (
	broadcastBuffer  = 64
	subscriberBuffer = 16
	writeWait        = 10 * time.Second
)

func NewOrderHub(log *logger.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]*subscriber),
		broadcast:  make(chan OrderEvent, broadcastBuffer),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled. It never
// writes to a socket itself, so one slow screen cannot hold up the others.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn, sub := range h.clients {
				close(sub.send)
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case s := <-h.register:
			scope, _ := services.ScopeForRole(s.Role)
			sub := &subscriber{conn: s.Conn, scope: scope, send: make(chan OrderEvent, subscriberBuffer)}
			h.mu.Lock()
			h.clients[s.Conn] = sub
			h.mu.Unlock()
			go h.write(sub)

		case s := <-h.unregister:
			h.mu.Lock()
			h.drop(s.Conn)
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn, sub := range h.clients {
				if !sub.scope.Allows(ev.Order.Status) {
					continue
				}
				select {
				case sub.send <- ev:
				default:
					h.log.Warn("ws_broadcast", "", "dropping subscriber: send queue full")
					h.drop(conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with h.mu held.
func (h *OrderHub) drop(conn *websocket.Conn) {
	sub, ok := h.clients[conn]
	if !ok {
		return
	}
	delete(h.clients, conn)
	close(sub.send)
	conn.Close()
}

// write drains the subscriber queue onto the socket.
func (h *OrderHub) write(sub *subscriber) {
	defer sub.conn.Close()
	for ev := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteJSON(ev); err != nil {
			h.log.Warn("ws_write", "", "write failed: "+err.Error())
			return
		}
	}
	sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
	sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// Publish queues an event. It never blocks a request: when the queue is full the
// event is dropped and logged.
func (h *OrderHub) Publish(event string, order entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Event: event, Order: order}:
	default:
		h.log.Warn("ws_publish", "", "order event dropped: queue full")
	}
}

// Subscribers returns the number of live connections.
func (h *OrderHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /api/ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	role := utils.CurrentRole(c)
	if _, ok := services.ScopeForRole(role); !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("ws_upgrade", utils.RequestID(c), "websocket upgrade failed", err)
		return
	}

	sub := Subscription{Conn: conn, Role: role, UserID: utils.CurrentUserID(c)}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go h.listen(sub)
}

// listen drains client frames; screens only receive, so anything read is ignored.
// A read error means the peer went away.
func (h *OrderHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
