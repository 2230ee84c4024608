package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"insider/internal/app"
	"insider/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Size of the send channel buffer
	sendBufferSize = 256
)

// session is the part of app.GameSession a client drives
type session interface {
	GetRoomCode() string
	Snapshot() domain.GameState
	Dispatch(action domain.Action) domain.GameState
	StartGame() (domain.GameState, error)
	SetInsiderCount(count int) (domain.GameState, error)
	SetCustomTopic(topic string) (domain.GameState, error)
	RecordQuestion(playerName, question, answer string) (domain.GameState, error)
	SubmitTopicGuess(guess string) (bool, domain.GameState, error)
	SubmitVotes(votes map[string]int) (*domain.VoteTally, domain.GameState, error)
	UnregisterClient(clientID string)
}

var _ session = (*app.GameSession)(nil)

// Client represents a WebSocket client connection
type Client struct {
	conn     *websocket.Conn
	session  session
	clientID string
	send     chan []byte
	done     chan struct{}
	logger   *slog.Logger
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, session *app.GameSession, clientID string, logger *slog.Logger) *Client {
	return newClient(conn, session, clientID, logger)
}

func newClient(conn *websocket.Conn, s session, clientID string, logger *slog.Logger) *Client {
	return &Client{
		conn:     conn,
		session:  s,
		clientID: clientID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// GetClientID implements app.ClientConnection interface
func (c *Client) GetClientID() string {
	return c.clientID
}

// Send implements app.ClientConnection interface
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn("send buffer full, message dropped", "clientID", c.clientID)
		return nil
	}
}

// Close implements app.ClientConnection interface
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.session.UnregisterClient(c.clientID)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgDispatch:
		c.handleDispatch(msg.Payload)
	case MsgStartGame:
		c.reply(c.session.StartGame())
	case MsgSetInsiderCount:
		var p SetInsiderCountPayload
		if c.decode(msg.Payload, &p) {
			c.reply(c.session.SetInsiderCount(p.Count))
		}
	case MsgSetTopic:
		var p SetTopicPayload
		if c.decode(msg.Payload, &p) {
			c.reply(c.session.SetCustomTopic(p.Topic))
		}
	case MsgAskQuestion:
		var p AskQuestionPayload
		if c.decode(msg.Payload, &p) {
			c.reply(c.session.RecordQuestion(p.PlayerName, p.Question, p.Answer))
		}
	case MsgGuessTopic:
		c.handleGuessTopic(msg.Payload)
	case MsgSubmitVotes:
		c.handleSubmitVotes(msg.Payload)
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// handleDispatch decodes an action envelope and feeds it to the session
func (c *Client) handleDispatch(payload json.RawMessage) {
	action, err := domain.DecodeAction(payload)
	if err != nil {
		c.sendDomainError(err)
		return
	}
	c.session.Dispatch(action)
}

// handleGuessTopic handles a guess_topic message
func (c *Client) handleGuessTopic(payload json.RawMessage) {
	var p GuessTopicPayload
	if !c.decode(payload, &p) {
		return
	}

	correct, _, err := c.session.SubmitTopicGuess(p.Guess)
	if err != nil {
		c.sendDomainError(err)
		return
	}
	c.Send(NewServerMessage(MsgGuessResult, &GuessResultPayload{Correct: correct}))
}

// handleSubmitVotes handles a submit_votes message
func (c *Client) handleSubmitVotes(payload json.RawMessage) {
	var p SubmitVotesPayload
	if !c.decode(payload, &p) {
		return
	}

	tally, _, err := c.session.SubmitVotes(p.Votes)
	if err != nil {
		c.sendDomainError(err)
		return
	}
	c.Send(NewServerMessage(MsgVoteResult, &VoteResultPayload{
		Tally:       tally,
		ResultLabel: tally.Winner.Label(),
	}))
}

// decode parses a message payload, reporting failures to the client
func (c *Client) decode(payload json.RawMessage, v interface{}) bool {
	if len(payload) == 0 {
		c.sendError(ErrCodeInvalidMessage, "Payload is required")
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return false
	}
	return true
}

// reply reports a collaborator error; the new state itself arrives via broadcast
func (c *Client) reply(_ domain.GameState, err error) {
	if err != nil {
		c.sendDomainError(err)
	}
}

// sendConnected sends the connected message to the client
func (c *Client) sendConnected() {
	payload := &ConnectedPayload{
		ClientID:  c.clientID,
		GameID:    c.session.GetRoomCode(),
		GameState: c.session.Snapshot(),
	}

	msg := NewServerMessage(MsgConnected, payload)
	c.Send(msg)
}

// sendDomainError translates a domain error into an error message
func (c *Client) sendDomainError(err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownAction):
		c.sendError(ErrCodeUnknownAction, err.Error())
	case errors.Is(err, domain.ErrInvalidPayload):
		c.sendError(ErrCodeInvalidMessage, err.Error())
	case errors.Is(err, domain.ErrInvalidPhase):
		c.sendError(ErrCodeInvalidPhase, err.Error())
	case errors.Is(err, domain.ErrGameNotFound):
		c.sendError(ErrCodeGameNotFound, err.Error())
	case errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrInvalidInsiderCount),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrUnknownQuestioner),
		errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrNegativeVotes):
		c.sendError(ErrCodeInvalidAction, err.Error())
	default:
		c.sendError(ErrCodeInternalError, err.Error())
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	payload := &ErrorPayload{
		Code:    code,
		Message: message,
	}

	msg := NewServerMessage(MsgError, payload)
	c.Send(msg)
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	msg := NewServerMessage(MsgPong, nil)
	c.Send(msg)
}
