/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Truth or Dare
//
// One game per ID. Every browser that opens /truthordare/:gameid sees and
// drives the same table, so the game can run on a shared screen, on
// everyone's phones, or both.
//
// Features:
// - WebSockets per game ID: /truthordare/:gameid and /truthordare/:gameid/ws
// - Setup screens (language, category, players, custom prompts) shared by every connected browser
// - Adult category gated behind an 18+ confirmation
// - Spin results are only decided once the pointer has settled
// - Validation errors are sent only to the client that caused them
// - Games auto-reaped after configurable idle timeout, cancelling any spin in flight
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current game, backed by go-qrcode
package main

import (
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/truthordare/games/truthordare"
)

const (
	gamePath         = "/truthordare"
	clientCookieName = "truthordare_id"
	indexFile        = "assets/truthordare/index.html"
)

var errUnknownMessage = errors.New("unknown message type")

// Messages coming from clients
type ClientMessage struct {
	Type      string `json:"type"`                // see Hub.apply
	Language  string `json:"language,omitempty"`  // set_language
	Category  string `json:"category,omitempty"`  // set_category
	Confirmed bool   `json:"confirmed,omitempty"` // set_category (Adult) / reset
	Name      string `json:"name,omitempty"`      // add_player
	Index     int    `json:"index,omitempty"`     // remove_player / remove_prompt
	Kind      string `json:"kind,omitempty"`      // add_prompt / remove_prompt / choose
	Text      string `json:"text,omitempty"`      // add_prompt
	Mix       bool   `json:"mix,omitempty"`       // set_mix
}

// StateMessage carries the full game view; sent to everyone after each change.
type StateMessage struct {
	Type  string           `json:"type"` // "state"
	State truthordare.View `json:"state"`
}

// ErrorMessage is sent only to the client whose request was rejected.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// CelebrateMessage tells every client to throw confetti for a completed prompt.
type CelebrateMessage struct {
	Type   string             `json:"type"` // "celebrate"
	Player truthordare.Player `json:"player"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	clientID string
}

type clientRequest struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	session *truthordare.Session
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	requests chan clientRequest
	refresh  chan struct{}
	quit     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
}

func newHub(gameID string, opts truthordare.RoundOptions) *Hub {
	now := time.Now()

	h := &Hub{
		id:         gameID,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		requests:   make(chan clientRequest),
		refresh:    make(chan struct{}, 1),
		quit:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}

	opts.Notifier = h
	h.session = truthordare.NewSession(opts)

	return h
}

// RoundChanged is called from the round's timers; the run loop does the broadcast.
func (h *Hub) RoundChanged(truthordare.RoundView) {
	select {
	case h.refresh <- struct{}{}:
	default:
	}
}

// Celebrate broadcasts the confetti signal for a completed prompt.
func (h *Hub) Celebrate(player truthordare.Player) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcastLocked(CelebrateMessage{
		Type:   "celebrate",
		Player: player,
	})
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case <-h.quit:
			return

		case c := <-h.register:
			state := h.stateMessage()

			h.mu.Lock()
			h.lastActive = time.Now()
			h.clients[c] = true
			h.sendLocked(c, state)
			h.mu.Unlock()

			logf(cfg, "GAMES: Client %s joined %s", c.clientID, h.id)

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case req := <-h.requests:
			h.handleRequest(cfg, req)

		case <-h.refresh:
			h.broadcastState()
		}
	}
}

func (h *Hub) handleRequest(cfg *Config, req clientRequest) {
	h.mu.Lock()
	h.lastActive = time.Now()
	h.mu.Unlock()

	err := h.apply(req.msg)

	var gameErr truthordare.Error

	switch {
	case err == nil:
		logf(cfg, "GAMES: %s %s", h.id, req.msg.Type)
		h.broadcastState()
	case errors.As(err, &gameErr):
		h.mu.Lock()
		h.sendLocked(req.client, ErrorMessage{
			Type:    "error",
			Message: gameErr.Error(),
		})
		h.mu.Unlock()
	default:
		logf(cfg, "GAMES: %s ignored %q from %s: %v", h.id, req.msg.Type, req.client.clientID, err)
	}
}

// apply runs one client request against the session.
func (h *Hub) apply(msg ClientMessage) error {
	switch msg.Type {
	case "set_language":
		lang, err := truthordare.ParseLanguage(msg.Language)
		if err != nil {
			return err
		}
		return h.session.Setup(func(s *truthordare.Setup) error { return s.SetLanguage(lang) })

	case "set_category":
		cat, err := truthordare.ParseCategory(msg.Category)
		if err != nil {
			return err
		}
		return h.session.Setup(func(s *truthordare.Setup) error { return s.SelectCategory(cat, msg.Confirmed) })

	case "add_player":
		return h.session.Setup(func(s *truthordare.Setup) error { return s.AddPlayer(msg.Name) })

	case "remove_player":
		return h.session.Setup(func(s *truthordare.Setup) error { return s.RemovePlayer(msg.Index) })

	case "confirm_players":
		return h.session.Setup((*truthordare.Setup).ConfirmPlayers)

	case "add_prompt", "remove_prompt":
		kind, err := truthordare.ParseKind(msg.Kind)
		if err != nil {
			return err
		}
		if msg.Type == "add_prompt" {
			return h.session.Setup(func(s *truthordare.Setup) error { return s.AddCustomPrompt(kind, msg.Text) })
		}
		return h.session.Setup(func(s *truthordare.Setup) error { return s.RemoveCustomPrompt(kind, msg.Index) })

	case "set_mix":
		return h.session.Setup(func(s *truthordare.Setup) error { return s.SetMix(msg.Mix) })

	case "back":
		return h.session.Setup((*truthordare.Setup).Back)

	case "start":
		return h.session.Start()

	case "spin":
		return h.session.Round(func(r *truthordare.Round) error {
			_, err := r.RequestSpin()
			return err
		})

	case "choose":
		kind, err := truthordare.ParseKind(msg.Kind)
		if err != nil {
			return err
		}
		return h.session.Round(func(r *truthordare.Round) error {
			_, err := r.RequestChoice(kind)
			return err
		})

	case "done":
		return h.session.Round((*truthordare.Round).RequestDone)

	case "forfeit":
		return h.session.Round((*truthordare.Round).RequestForfeit)

	case "cancel":
		return h.session.Round((*truthordare.Round).RequestCancel)

	case "next_pointer":
		return h.session.Round((*truthordare.Round).NextPointer)

	case "reset":
		return h.session.Reset(msg.Confirmed)
	}

	return errUnknownMessage
}

func (h *Hub) stateMessage() StateMessage {
	return StateMessage{
		Type:  "state",
		State: h.session.View(),
	}
}

func (h *Hub) broadcastState() {
	state := h.stateMessage()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.broadcastLocked(state)
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

// sendLocked queues msg for c, dropping the client if it has fallen behind.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

// closeAll ends the game and disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.stopOnce.Do(func() {
		close(h.quit)
	})

	h.session.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func getOrSetClientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated game.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	opts        truthordare.RoundOptions
	idleTimeout time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func newGameManager(idleTimeout time.Duration, opts truthordare.RoundOptions) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		opts:        opts,
		idleTimeout: idleTimeout,
		stop:        make(chan struct{}),
	}

	if idleTimeout > 0 {
		go gm.reaperLoop()
	}

	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID, gm.opts)
	gm.hubs[gameID] = hub
	go hub.run(cfg)

	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}

		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reap removes hubs that have been idle since before cutoff.
func (gm *GameManager) reap(cutoff time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	reaped := 0

	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			go hub.closeAll()
			reaped++
		}
	}

	return reaped
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-gm.stop:
			return
		case <-ticker.C:
			gm.reap(time.Now().Add(-gm.idleTimeout))
		}
	}
}

// Close stops the reaper and ends every game.
func (gm *GameManager) Close() {
	gm.stopOnce.Do(func() {
		close(gm.stop)
	})

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hub.closeAll()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		clientID := getOrSetClientID(w, r)

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 16),
			clientID: clientID,
		}

		select {
		case hub.register <- client:
		case <-hub.quit:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.quit:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		select {
		case h.requests <- clientRequest{client: c, msg: msg}:
		case <-h.quit:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
		path := strings.TrimSuffix(r.URL.Path, "/qr")
		url := scheme + "://" + r.Host + path

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}

func getIndexHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile(indexFile)
		if err != nil {
			http.Error(w, "missing client", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)
		_ = getOrSetClientID(w, r)

		if _, err := w.Write(data); err != nil {
			errs <- err
		}
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerTruthOrDare sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerTruthOrDare(cfg *Config, path string, banks truthordare.Banks, mux *httprouter.Router, errs chan<- error) *GameManager {
	gm := newGameManager(cfg.sessionTimeout, truthordare.RoundOptions{
		Banks:        banks,
		SpinDuration: cfg.spinDuration,
		TurnTime:     cfg.turnTime,
	})

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg, errs))

	return gm
}
