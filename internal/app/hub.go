package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"insider/internal/domain"
)

const (
	// DefaultRoomCodeLength is the default length for room codes
	DefaultRoomCodeLength = 6

	// DefaultStaleTimeout is how long an idle room without clients survives
	DefaultStaleTimeout = 2 * time.Hour

	// DefaultCleanupInterval is how often stale rooms are looked for
	DefaultCleanupInterval = 10 * time.Minute
)

// RoomCodeChars are characters used for room codes (no ambiguous chars)
const RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// HubOptions configures a GameHub
type HubOptions struct {
	Clock           clockwork.Clock
	RoomCodeLength  int
	StaleTimeout    time.Duration
	CleanupInterval time.Duration

	// Seed makes every room's dealing and topic draws reproducible when
	// non-zero
	Seed uint64

	TickInterval time.Duration
	MinPlayers   int
	Topics       domain.TopicPool
}

// GameHub manages all active game sessions
type GameHub struct {
	sessions map[string]*GameSession
	mu       sync.RWMutex
	opts     HubOptions
	created  uint64
	logger   *slog.Logger
	done     chan struct{}
	once     sync.Once
}

// NewGameHub creates a new game hub
func NewGameHub(opts HubOptions, logger *slog.Logger) *GameHub {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.RoomCodeLength <= 0 {
		opts.RoomCodeLength = DefaultRoomCodeLength
	}
	if opts.StaleTimeout <= 0 {
		opts.StaleTimeout = DefaultStaleTimeout
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}

	hub := &GameHub{
		sessions: make(map[string]*GameSession),
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	ticker := opts.Clock.NewTicker(opts.CleanupInterval)
	go hub.cleanupLoop(ticker)

	return hub
}

// CreateGame creates a new game and returns its session
func (h *GameHub) CreateGame() (*GameSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Generate unique room code
	var roomCode string
	for attempts := 0; attempts < 10; attempts++ {
		roomCode = h.generateRoomCode()
		if _, exists := h.sessions[roomCode]; !exists {
			break
		}
	}

	// Check if we found a unique code
	if _, exists := h.sessions[roomCode]; exists {
		return nil, fmt.Errorf("failed to generate unique room code")
	}

	h.created++
	var seed uint64
	if h.opts.Seed != 0 {
		seed = h.opts.Seed + h.created
	}

	session := NewGameSession(roomCode, SessionOptions{
		Clock:        h.opts.Clock,
		TickInterval: h.opts.TickInterval,
		MinPlayers:   h.opts.MinPlayers,
		Topics:       h.opts.Topics,
		Rand:         newRand(seed),
	}, h.logger)
	h.sessions[roomCode] = session

	h.logger.Info("game created", "roomCode", roomCode)

	return session, nil
}

// GetSession returns a game session by room code
func (h *GameHub) GetSession(roomCode string) (*GameSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[roomCode]
	if !ok {
		return nil, domain.ErrGameNotFound
	}

	return session, nil
}

// DeleteSession removes a game session
func (h *GameHub) DeleteSession(roomCode string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[roomCode]
	if !ok {
		return domain.ErrGameNotFound
	}

	session.Close()
	delete(h.sessions, roomCode)
	h.logger.Info("game deleted", "roomCode", roomCode)

	return nil
}

// GetSessionCount returns the number of active sessions
func (h *GameHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetTotalPlayerCount returns the total roster size across all sessions
func (h *GameHub) GetTotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.GetPlayerCount()
	}
	return total
}

// GetRunningTimerCount returns how many sessions have a live countdown
func (h *GameHub) GetRunningTimerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		if session.TimerTicking() {
			total++
		}
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *GameHub) Close() {
	h.once.Do(func() {
		close(h.done)

		h.mu.Lock()
		defer h.mu.Unlock()

		for _, session := range h.sessions {
			session.Close()
		}
		h.sessions = make(map[string]*GameSession)
	})
}

// generateRoomCode generates a random room code
func (h *GameHub) generateRoomCode() string {
	b := make([]byte, h.opts.RoomCodeLength)
	crand.Read(b)

	code := make([]byte, h.opts.RoomCodeLength)
	for i := range code {
		code[i] = RoomCodeChars[int(b[i])%len(RoomCodeChars)]
	}

	return string(code)
}

// cleanupLoop periodically cleans up stale games
func (h *GameHub) cleanupLoop(ticker clockwork.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.Chan():
			h.cleanupStaleGames()
		}
	}
}

// cleanupStaleGames removes games nobody is connected to that have been
// idle for too long
func (h *GameHub) cleanupStaleGames() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.opts.Clock.Now()
	stale := make([]string, 0)

	for roomCode, session := range h.sessions {
		if session.GetClientCount() == 0 && now.Sub(session.GetLastActive()) > h.opts.StaleTimeout {
			stale = append(stale, roomCode)
		}
	}

	for _, roomCode := range stale {
		if session, ok := h.sessions[roomCode]; ok {
			session.Close()
			delete(h.sessions, roomCode)
			h.logger.Info("stale game cleaned up",
				"roomCode", roomCode,
				"age", now.Sub(session.GetCreatedAt()),
			)
		}
	}
}

// newRand returns a PCG source. A zero seed draws one from crypto/rand.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		var b [16]byte
		crand.Read(b[:])
		return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
