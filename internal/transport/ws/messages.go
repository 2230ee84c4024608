package ws

import (
	"encoding/json"
	"time"

	"insider/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgDispatch        MessageType = "dispatch"
	MsgStartGame       MessageType = "start_game"
	MsgSetInsiderCount MessageType = "set_insider_count"
	MsgSetTopic        MessageType = "set_topic"
	MsgAskQuestion     MessageType = "ask_question"
	MsgGuessTopic      MessageType = "guess_topic"
	MsgSubmitVotes     MessageType = "submit_votes"
	MsgPing            MessageType = "ping"
)

// Server → Client message types. State changes reach clients as
// domain.GameEvent broadcasts from the session.
const (
	MsgConnected   MessageType = "connected"
	MsgError       MessageType = "error"
	MsgGuessResult MessageType = "guess_result"
	MsgVoteResult  MessageType = "vote_result"
	MsgPong        MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// SetInsiderCountPayload is the payload for set_insider_count message
type SetInsiderCountPayload struct {
	Count int `json:"count"`
}

// SetTopicPayload is the payload for set_topic message
type SetTopicPayload struct {
	Topic string `json:"topic"`
}

// AskQuestionPayload is the payload for ask_question message
type AskQuestionPayload struct {
	PlayerName string `json:"playerName"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// GuessTopicPayload is the payload for guess_topic message
type GuessTopicPayload struct {
	Guess string `json:"guess"`
}

// SubmitVotesPayload is the payload for submit_votes message
type SubmitVotesPayload struct {
	Votes map[string]int `json:"votes"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID  string           `json:"clientId"`
	GameID    string           `json:"gameId"`
	GameState domain.GameState `json:"gameState"`
}

// GuessResultPayload is the payload for guess_result message
type GuessResultPayload struct {
	Correct bool `json:"correct"`
}

// VoteResultPayload is the payload for vote_result message
type VoteResultPayload struct {
	Tally       *domain.VoteTally `json:"tally"`
	ResultLabel string            `json:"resultLabel"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeGameNotFound   = "GAME_NOT_FOUND"
	ErrCodeUnknownAction  = "UNKNOWN_ACTION"
	ErrCodeInvalidPhase   = "INVALID_PHASE"
	ErrCodeInvalidAction  = "INVALID_ACTION"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
