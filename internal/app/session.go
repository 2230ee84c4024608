package app

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"insider/internal/domain"
)

const (
	// DefaultMinPlayers is the smallest roster a game can start with
	DefaultMinPlayers = 3

	// DefaultTickInterval is how often a running countdown consumes a second
	DefaultTickInterval = time.Second

	eventBufferSize = 100
)

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	GetClientID() string
	Close() error
}

// SessionOptions configures a GameSession
type SessionOptions struct {
	Clock        clockwork.Clock
	TickInterval time.Duration
	MinPlayers   int
	Topics       domain.TopicPool
	Rand         domain.Rand
}

func (o SessionOptions) withDefaults() SessionOptions {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.MinPlayers <= 0 {
		o.MinPlayers = DefaultMinPlayers
	}
	if o.Topics == nil {
		o.Topics = domain.DefaultTopics
	}
	if o.Rand == nil {
		o.Rand = newRand(0)
	}
	return o
}

// GameSession owns the single live state of one game. Every change goes
// through Dispatch, which replaces the state wholesale, so a snapshot
// handed out earlier is never modified.
type GameSession struct {
	id         string
	machine    *domain.Machine
	state      domain.GameState
	minPlayers int
	mu         sync.RWMutex

	clock      clockwork.Clock
	countdown  *Countdown
	createdAt  time.Time
	lastActive time.Time

	clients   map[string]ClientConnection // clientID -> client
	clientsMu sync.RWMutex
	logger    *slog.Logger

	// Event channel for broadcasting
	events    chan *domain.GameEvent
	done      chan struct{}
	closeOnce sync.Once
}

// NewGameSession creates a session in the initial state
func NewGameSession(id string, opts SessionOptions, logger *slog.Logger) *GameSession {
	opts = opts.withDefaults()

	session := &GameSession{
		id:         id,
		machine:    domain.NewMachine(opts.Topics, opts.Rand),
		state:      domain.NewGameState(),
		minPlayers: opts.MinPlayers,
		clock:      opts.Clock,
		createdAt:  opts.Clock.Now(),
		lastActive: opts.Clock.Now(),
		clients:    make(map[string]ClientConnection),
		logger:     logger.With("roomCode", id),
		events:     make(chan *domain.GameEvent, eventBufferSize),
		done:       make(chan struct{}),
	}
	session.countdown = NewCountdown(opts.Clock, opts.TickInterval, session.tick)

	// Start event broadcaster
	go session.eventLoop()

	return session
}

// GetRoomCode returns the room code
func (s *GameSession) GetRoomCode() string {
	return s.id
}

// GetCreatedAt returns when the session was created
func (s *GameSession) GetCreatedAt() time.Time {
	return s.createdAt
}

// GetTopicCount returns how many topics the room draws from
func (s *GameSession) GetTopicCount() int {
	return len(s.machine.Topics())
}

// GetLastActive returns when the last action was dispatched
func (s *GameSession) GetLastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// Snapshot returns the current state
func (s *GameSession) Snapshot() domain.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// GetPhase returns the current game phase
func (s *GameSession) GetPhase() domain.Phase {
	return s.Snapshot().Phase
}

// GetPlayerCount returns the number of names on the roster
func (s *GameSession) GetPlayerCount() int {
	return len(s.Snapshot().PlayerNames)
}

// TimerTicking reports whether the countdown task is live
func (s *GameSession) TimerTicking() bool {
	return s.countdown.Running()
}

// Dispatch applies one action and returns the resulting state
func (s *GameSession) Dispatch(action domain.Action) domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(action)
}

// dispatchLocked applies an action (caller must hold lock)
func (s *GameSession) dispatchLocked(action domain.Action) domain.GameState {
	if action == nil {
		return s.state
	}

	s.state = s.machine.Reduce(s.state, action)
	s.lastActive = s.clock.Now()
	s.syncCountdown()

	if action.Type() != domain.ActionTickTimer {
		s.logger.Debug("action dispatched",
			"action", action.Type(),
			"phase", s.state.Phase,
			"timerRunning", s.state.IsTimerRunning,
		)
	}

	s.queueEvent(domain.NewEvent(domain.EventStateChanged, s.id, &domain.StateChangedPayload{
		Action: action.Type(),
		State:  s.state,
	}, s.lastActive))

	return s.state
}

// syncCountdown keeps the ticker in step with IsTimerRunning (caller must hold lock)
func (s *GameSession) syncCountdown() {
	if s.state.IsTimerRunning {
		if s.countdown.Start() {
			s.logger.Debug("countdown started", "timer", s.state.Timer)
		}
		return
	}
	if s.countdown.Stop() {
		s.logger.Debug("countdown stopped", "timer", s.state.Timer)
	}
}

// tick is the countdown task. stop belongs to the run that fired it; a
// restart while tick waited for the lock leaves it closed.
func (s *GameSession) tick(stop <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-stop:
		return
	default:
	}
	if !s.state.IsTimerRunning {
		return
	}
	s.dispatchLocked(domain.TickTimer{})

	if !s.state.IsTimerRunning {
		s.logger.Info("countdown finished")
	}
}

// StartGame deals roles once the roster is large enough
func (s *GameSession) StartGame() (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhaseHome {
		return s.state, domain.ErrInvalidPhase
	}
	if len(s.state.PlayerNames) < s.minPlayers {
		return s.state, fmt.Errorf("%w: have %d, need %d", domain.ErrNotEnoughPlayers, len(s.state.PlayerNames), s.minPlayers)
	}
	if n := s.state.InsiderCount; n < 1 || n > s.state.MaxInsiderCount() {
		return s.state, fmt.Errorf("%w: %d insiders for %d players", domain.ErrInvalidInsiderCount, n, len(s.state.PlayerNames))
	}

	next := s.dispatchLocked(domain.SetupGame{})
	s.logger.Info("game started",
		"players", len(next.Players),
		"insiders", next.InsiderCount,
		"audience", len(next.AudienceNames),
	)
	return next, nil
}

// SetInsiderCount sets the insider count within what the roster supports
func (s *GameSession) SetInsiderCount(count int) (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count < 1 || count > max(1, s.state.MaxInsiderCount()) {
		return s.state, fmt.Errorf("%w: %d", domain.ErrInvalidInsiderCount, count)
	}
	return s.dispatchLocked(domain.SetInsiderCount{Count: count}), nil
}

// SetCustomTopic replaces the drawn topic during the role check
func (s *GameSession) SetCustomTopic(topic string) (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhaseRoleCheck {
		return s.state, domain.ErrInvalidPhase
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return s.state, domain.ErrEmptyTopic
	}
	return s.dispatchLocked(domain.SetTopic{Topic: topic}), nil
}

// RecordQuestion adds a question and its answer to the history
func (s *GameSession) RecordQuestion(playerName, question, answer string) (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhaseQuestion {
		return s.state, domain.ErrInvalidPhase
	}
	known := false
	for _, name := range s.state.Questioners() {
		if name == playerName {
			known = true
			break
		}
	}
	if !known {
		return s.state, fmt.Errorf("%w: %q", domain.ErrUnknownQuestioner, playerName)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return s.state, domain.ErrEmptyQuestion
	}

	return s.dispatchLocked(domain.AddHistory{Entry: domain.HistoryItem{
		PlayerName: playerName,
		Question:   question,
		Answer:     answer,
	}}), nil
}

// SubmitTopicGuess checks the citizens' guess. A match moves on to the
// insider vote; a miss returns to questioning.
func (s *GameSession) SubmitTopicGuess(guess string) (bool, domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhaseGuessTopic {
		return false, s.state, domain.ErrInvalidPhase
	}

	matched := domain.TopicMatches(guess, s.state.Topic)
	next := s.dispatchLocked(domain.ChangePhase{Phase: domain.NextPhaseAfterGuess(guess, s.state.Topic)})
	s.logger.Info("topic guessed", "matched", matched)

	return matched, next, nil
}

// SubmitVotes counts the insider vote, records the winner and shows the
// result. Players missing from votes count as zero votes.
func (s *GameSession) SubmitVotes(votes map[string]int) (*domain.VoteTally, domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhaseInsiderGuess {
		return nil, s.state, domain.ErrInvalidPhase
	}

	counts := make(map[string]int, len(s.state.Players))
	for _, p := range s.state.Players {
		counts[p.Name] = 0
	}
	for name, count := range votes {
		if _, ok := counts[name]; !ok {
			return nil, s.state, fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, name)
		}
		if count < 0 {
			return nil, s.state, fmt.Errorf("%w: %q", domain.ErrNegativeVotes, name)
		}
		counts[name] = count
	}

	tally := domain.TallyVotes(s.state.Players, counts)
	s.dispatchLocked(domain.SetResult{Result: tally.Winner})
	next := s.dispatchLocked(domain.ChangePhase{Phase: domain.PhaseResult})

	s.logger.Info("votes counted",
		"tie", tally.IsTie,
		"accused", tally.Accused,
		"winner", tally.Winner,
	)
	return tally, next, nil
}

// RegisterClient registers a client connection
func (s *GameSession) RegisterClient(clientID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[clientID] = client
}

// UnregisterClient removes a client connection
func (s *GameSession) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// GetClientCount returns the number of connected clients
func (s *GameSession) GetClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// queueEvent adds an event to the broadcast queue
func (s *GameSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (s *GameSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every client
func (s *GameSession) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "clientID", clientID, "error", err)
		}
	}
}

// Close shuts down the session
func (s *GameSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.countdown.Stop()

		closed := domain.NewEvent(domain.EventRoomClosed, s.id, nil, s.clock.Now())

		// Close all client connections
		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Send(closed)
			client.Close()
		}
		s.clients = make(map[string]ClientConnection)
		s.clientsMu.Unlock()
	})
}
