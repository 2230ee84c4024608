package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"insider/internal/app"
	"insider/internal/domain"
)

// maxBodySize bounds request bodies; actions and vote maps are small
const maxBodySize = 64 << 10

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	RoomCode   string           `json:"roomCode"`
	CreatedAt  time.Time        `json:"createdAt"`
	TopicCount int              `json:"topicCount"`
	State      domain.GameState `json:"state"`
}

// RoomStateResponse carries a state snapshot
type RoomStateResponse struct {
	RoomCode  string           `json:"roomCode"`
	CreatedAt time.Time        `json:"createdAt"`
	State     domain.GameState `json:"state"`
}

// InsiderCountRequest is the body of POST /insider-count
type InsiderCountRequest struct {
	Count int `json:"count"`
}

// TopicRequest is the body of POST /topic
type TopicRequest struct {
	Topic string `json:"topic"`
}

// QuestionRequest is the body of POST /questions
type QuestionRequest struct {
	PlayerName string `json:"playerName"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// GuessRequest is the body of POST /guess
type GuessRequest struct {
	Guess string `json:"guess"`
}

// GuessResponse reports whether the topic was named
type GuessResponse struct {
	Correct bool             `json:"correct"`
	State   domain.GameState `json:"state"`
}

// VotesRequest is the body of POST /votes
type VotesRequest struct {
	Votes map[string]int `json:"votes"`
}

// VotesResponse carries the tally and the resulting state
type VotesResponse struct {
	Tally  *domain.VoteTally `json:"tally"`
	Result string            `json:"resultLabel"`
	State  domain.GameState  `json:"state"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveGames   int `json:"activeGames"`
	TotalPlayers  int `json:"totalPlayers"`
	RunningTimers int `json:"runningTimers"`
}

// handleCreateRoom handles POST /api/rooms
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	session, err := s.hub.CreateGame()
	if err != nil {
		s.logger.Error("failed to create room", "error", err)
		s.sendError(w, http.StatusInternalServerError, "CREATION_FAILED", "Failed to create room")
		return
	}

	s.sendJSON(w, http.StatusCreated, &CreateRoomResponse{
		RoomCode:   session.GetRoomCode(),
		CreatedAt:  session.GetCreatedAt(),
		TopicCount: session.GetTopicCount(),
		State:      session.Snapshot(),
	})
}

// handleGetRoom handles GET /api/rooms/{roomCode}
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	s.sendState(w, session, session.Snapshot())
}

// handleDeleteRoom handles DELETE /api/rooms/{roomCode}
func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.DeleteSession(roomCode(r)); err != nil {
		s.sendDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDispatch handles POST /api/rooms/{roomCode}/actions
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Could not read request body")
		return
	}

	action, err := domain.DecodeAction(body)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}

	s.sendState(w, session, session.Dispatch(action))
}

// handleStartGame handles POST /api/rooms/{roomCode}/start
func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	state, err := session.StartGame()
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendState(w, session, state)
}

// handleSetInsiderCount handles POST /api/rooms/{roomCode}/insider-count
func (s *Server) handleSetInsiderCount(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req InsiderCountRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	state, err := session.SetInsiderCount(req.Count)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendState(w, session, state)
}

// handleSetTopic handles POST /api/rooms/{roomCode}/topic
func (s *Server) handleSetTopic(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req TopicRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	state, err := session.SetCustomTopic(req.Topic)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendState(w, session, state)
}

// handleAskQuestion handles POST /api/rooms/{roomCode}/questions
func (s *Server) handleAskQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req QuestionRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	state, err := session.RecordQuestion(req.PlayerName, req.Question, req.Answer)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendState(w, session, state)
}

// handleGuessTopic handles POST /api/rooms/{roomCode}/guess
func (s *Server) handleGuessTopic(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req GuessRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	correct, state, err := session.SubmitTopicGuess(req.Guess)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendSuccess(w, &GuessResponse{Correct: correct, State: state})
}

// handleSubmitVotes handles POST /api/rooms/{roomCode}/votes
func (s *Server) handleSubmitVotes(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req VotesRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	tally, state, err := session.SubmitVotes(req.Votes)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}
	s.sendSuccess(w, &VotesResponse{
		Tally:  tally,
		Result: tally.Winner.Label(),
		State:  state,
	})
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveGames:   s.hub.GetSessionCount(),
		TotalPlayers:  s.hub.GetTotalPlayerCount(),
		RunningTimers: s.hub.GetRunningTimerCount(),
	})
}

// roomCode returns the normalized room code path value
func roomCode(r *http.Request) string {
	return strings.ToUpper(r.PathValue("roomCode"))
}

// lookupSession resolves the room in the path or writes a 404
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*app.GameSession, bool) {
	session, err := s.hub.GetSession(roomCode(r))
	if err != nil {
		s.sendDomainError(w, err)
		return nil, false
	}
	return session, true
}

// decodeBody parses a JSON request body or writes a 400
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body")
		return false
	}
	return true
}

// sendState sends a state snapshot
func (s *Server) sendState(w http.ResponseWriter, session *app.GameSession, state domain.GameState) {
	s.sendSuccess(w, &RoomStateResponse{
		RoomCode:  session.GetRoomCode(),
		CreatedAt: session.GetCreatedAt(),
		State:     state,
	})
}

// sendDomainError maps a domain error to a status and error code
func (s *Server) sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, domain.ErrUnknownAction):
		s.sendError(w, http.StatusBadRequest, "UNKNOWN_ACTION", err.Error())
	case errors.Is(err, domain.ErrInvalidPayload):
		s.sendError(w, http.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
	case errors.Is(err, domain.ErrInvalidPhase):
		s.sendError(w, http.StatusConflict, "INVALID_PHASE", err.Error())
	case errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrInvalidInsiderCount),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrUnknownQuestioner),
		errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrNegativeVotes):
		s.sendError(w, http.StatusUnprocessableEntity, "INVALID_ACTION", err.Error())
	default:
		s.logger.Error("unexpected error", "error", err)
		s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	s.sendJSON(w, http.StatusOK, data)
}

// sendJSON sends a successful JSON response with the given status
func (s *Server) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
