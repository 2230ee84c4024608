package domain

import "errors"

// Errors raised around the machine. Reduce itself never fails; these come
// from the action codec and from the rules collaborators enforce before
// dispatching.
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrUnknownAction       = errors.New("unknown action type")
	ErrInvalidPayload      = errors.New("invalid action payload")
	ErrInvalidPhase        = errors.New("invalid action for current phase")
	ErrNotEnoughPlayers    = errors.New("not enough players to start")
	ErrInvalidInsiderCount = errors.New("insider count out of range")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrUnknownQuestioner   = errors.New("questioner is not a player or audience member")
	ErrEmptyQuestion       = errors.New("question cannot be empty")
	ErrEmptyTopic          = errors.New("topic cannot be empty")
	ErrNegativeVotes       = errors.New("vote count cannot be negative")
)
