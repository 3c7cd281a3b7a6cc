package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/services"
	"github.com/abrezinsky/arena/internal/status"
)

// Message types sent to clients
const (
	MsgTick          = "tick"
	MsgStatusChanged = "status_changed"
	MsgCompetition   = "competition_updated"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // LAN dashboard, any origin
	},
}

// CompetitionLister is the part of the competition service the hub reads.
// Each tick takes one instant from Now and derives every view at it.
type CompetitionLister interface {
	Now() time.Time
	ListAt(ctx context.Context, f listing.Filter, lang i18n.Language, now time.Time) ([]services.CompetitionView, error)
}

// IntervalSource supplies the current tick interval
type IntervalSource interface {
	TickInterval(ctx context.Context) (time.Duration, error)
}

// LanguageSource supplies the language labels are rendered in
type LanguageSource interface {
	Language() i18n.Language
}

// CompetitionTick is the live state of one competition
type CompetitionTick struct {
	ID        int           `json:"id"`
	Status    status.Status `json:"status"`
	Target    time.Time     `json:"countdown_target"`
	Countdown status.Parts  `json:"countdown"`
	Display   string        `json:"countdown_display"`
	Compact   string        `json:"compact_countdown"`
	Joinable  bool          `json:"joinable"`
}

// Tick is the payload of a MsgTick message
type Tick struct {
	Now          time.Time         `json:"now"`
	Competitions []CompetitionTick `json:"competitions"`
}

// StatusChange is the payload of a MsgStatusChanged message
type StatusChange struct {
	ID    int           `json:"id"`
	Title string        `json:"title"`
	From  status.Status `json:"from"`
	To    status.Status `json:"to"`
}

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	log        logger.Logger
	clients    map[*Client]bool
	broadcast  chan models.WSMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex

	competitions CompetitionLister
	interval     IntervalSource
	lang         LanguageSource
	metrics      *metrics.Metrics

	lastMu     sync.Mutex
	lastStatus map[int]status.Status
}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan models.WSMessage
}

// New creates a new Hub. lang may be nil, in which case labels are English.
func New(log logger.Logger, competitions CompetitionLister, interval IntervalSource, lang LanguageSource) *Hub {
	return &Hub{
		log:          log,
		clients:      make(map[*Client]bool),
		broadcast:    make(chan models.WSMessage, 64),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		done:         make(chan struct{}),
		competitions: competitions,
		interval:     interval,
		lang:         lang,
		lastStatus:   make(map[int]status.Status),
	}
}

// SetMetrics attaches a metrics registry
func (h *Hub) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Run handles registration and broadcasting until ctx is cancelled.
// All client connections are closed on return.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			h.metrics.SetWSClients(0)
			h.log.Info("WebSocket hub stopped")
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mutex.Unlock()
			h.metrics.SetWSClients(n)
			h.log.Debug("Client connected", "total_clients", n)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mutex.Unlock()
			h.metrics.SetWSClients(n)
			h.log.Debug("Client disconnected", "total_clients", n)

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client
					delete(h.clients, client)
					close(client.send)
				}
			}
			n := len(h.clients)
			h.mutex.Unlock()
			h.metrics.SetWSClients(n)
		}
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// BroadcastMessage queues a message for every connected client. It is a
// no-op once the hub has stopped.
func (h *Hub) BroadcastMessage(msgType string, payload any) {
	select {
	case h.broadcast <- models.WSMessage{Type: msgType, Payload: payload}:
	case <-h.done:
	}
}

// BroadcastCompetition implements services.CompetitionBroadcaster
func (h *Hub) BroadcastCompetition(view services.CompetitionView) {
	h.BroadcastMessage(MsgCompetition, view)
}

// RunTicker broadcasts a tick at the configured interval until ctx is
// cancelled. The interval is re-read after every tick.
func (h *Hub) RunTicker(ctx context.Context) {
	timer := time.NewTimer(h.tickInterval(ctx))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("Countdown ticker stopped")
			return
		case <-timer.C:
			h.Tick(ctx)
			timer.Reset(h.tickInterval(ctx))
		}
	}
}

func (h *Hub) tickInterval(ctx context.Context) time.Duration {
	d, err := h.interval.TickInterval(ctx)
	if err != nil {
		h.log.Warn("Falling back to default tick interval", "error", err)
		return services.DefaultTickInterval
	}
	return d
}

func (h *Hub) language() i18n.Language {
	if h.lang == nil {
		return i18n.English
	}
	return h.lang.Language()
}

// Tick broadcasts the live state of every competition, preceded by one
// MsgStatusChanged per competition whose status moved since the last tick.
func (h *Hub) Tick(ctx context.Context) {
	snap, changes, err := h.snapshot(ctx)
	if err != nil {
		h.log.Warn("Failed to build tick", "error", err)
		return
	}
	for _, c := range changes {
		h.metrics.ObserveStatusTransition(string(c.To))
		h.log.Info("Competition status changed", "id", c.ID, "from", c.From, "to", c.To)
		h.BroadcastMessage(MsgStatusChanged, c)
	}
	h.BroadcastMessage(MsgTick, snap)
}

func (h *Hub) snapshot(ctx context.Context) (Tick, []StatusChange, error) {
	now := h.competitions.Now()
	views, err := h.competitions.ListAt(ctx, listing.Filter{}, h.language(), now)
	if err != nil {
		return Tick{}, nil, err
	}

	tick := tickFromViews(views, now)
	var changes []StatusChange
	seen := make(map[int]bool, len(views))

	h.lastMu.Lock()
	defer h.lastMu.Unlock()
	for _, v := range views {
		seen[v.ID] = true
		if prev, ok := h.lastStatus[v.ID]; ok && prev != v.Status {
			changes = append(changes, StatusChange{ID: v.ID, Title: v.Title, From: prev, To: v.Status})
		}
		h.lastStatus[v.ID] = v.Status
	}
	for id := range h.lastStatus {
		if !seen[id] {
			delete(h.lastStatus, id)
		}
	}
	return tick, changes, nil
}

// readPump drains the connection so control frames are processed
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("WebSocket error", "error", err)
			}
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(message, &msg); err == nil {
			c.hub.log.Debug("Received message", "type", msg.Type)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
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

// ServeWs upgrades the request and registers the client. The client
// receives the current tick before anything else.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade error", "error", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan models.WSMessage, sendBuffer),
	}
	now := h.competitions.Now()
	if views, err := h.competitions.ListAt(r.Context(), listing.Filter{}, h.language(), now); err == nil {
		client.send <- models.WSMessage{Type: MsgTick, Payload: tickFromViews(views, now)}
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func tickFromViews(views []services.CompetitionView, now time.Time) Tick {
	t := Tick{Now: now.UTC(), Competitions: make([]CompetitionTick, 0, len(views))}
	for _, v := range views {
		t.Competitions = append(t.Competitions, CompetitionTick{
			ID:        v.ID,
			Status:    v.Status,
			Target:    v.CountdownTarget,
			Countdown: v.Countdown,
			Display:   v.Display.Countdown,
			Compact:   v.Display.Compact,
			Joinable:  v.Joinable,
		})
	}
	return t
}
