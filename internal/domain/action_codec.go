package domain

import (
	"encoding/json"
	"fmt"
)

// ActionEnvelope is the wire form of an action
type ActionEnvelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses an action envelope
func DecodeAction(data []byte) (Action, error) {
	var env ActionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return env.ToAction()
}

// ToAction converts the envelope into a typed action
func (e ActionEnvelope) ToAction() (Action, error) {
	switch e.Type {
	case ActionAddPlayerName:
		name, err := decodePayload[string](e)
		return AddPlayerName{Name: name}, err
	case ActionRemovePlayerName:
		name, err := decodePayload[string](e)
		return RemovePlayerName{Name: name}, err
	case ActionAddAudienceName:
		name, err := decodePayload[string](e)
		return AddAudienceName{Name: name}, err
	case ActionRemoveAudienceName:
		name, err := decodePayload[string](e)
		return RemoveAudienceName{Name: name}, err
	case ActionSetInsiderCount:
		count, err := decodePayload[int](e)
		return SetInsiderCount{Count: count}, err
	case ActionSetupGame:
		return SetupGame{}, nil
	case ActionChangePhase:
		phase, err := decodePayload[Phase](e)
		if err == nil && !phase.IsValid() {
			err = fmt.Errorf("%w: unknown phase %q", ErrInvalidPayload, phase)
		}
		return ChangePhase{Phase: phase}, err
	case ActionSetTopic:
		topic, err := decodePayload[string](e)
		return SetTopic{Topic: topic}, err
	case ActionChangeTopicRandomly:
		return ChangeTopicRandomly{}, nil
	case ActionAddHistory:
		entry, err := decodePayload[HistoryItem](e)
		return AddHistory{Entry: entry}, err
	case ActionStartTimer:
		return StartTimer{}, nil
	case ActionStopTimer:
		return StopTimer{}, nil
	case ActionTickTimer:
		return TickTimer{}, nil
	case ActionSetTimerDuration:
		minutes, err := decodePayload[int](e)
		return SetTimerDuration{Minutes: minutes}, err
	case ActionSetResult:
		result, err := decodePayload[GameResult](e)
		if err == nil && !result.IsValid() {
			err = fmt.Errorf("%w: unknown result %q", ErrInvalidPayload, result)
		}
		return SetResult{Result: result}, err
	case ActionResetGame:
		return ResetGame{}, nil
	case ActionGoToHome:
		return GoToHome{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, e.Type)
	}
}

// EncodeAction builds the envelope for an action
func EncodeAction(action Action) (ActionEnvelope, error) {
	var payload any
	switch a := action.(type) {
	case AddPlayerName:
		payload = a.Name
	case RemovePlayerName:
		payload = a.Name
	case AddAudienceName:
		payload = a.Name
	case RemoveAudienceName:
		payload = a.Name
	case SetInsiderCount:
		payload = a.Count
	case ChangePhase:
		payload = a.Phase
	case SetTopic:
		payload = a.Topic
	case AddHistory:
		payload = a.Entry
	case SetTimerDuration:
		payload = a.Minutes
	case SetResult:
		payload = a.Result
	case nil:
		return ActionEnvelope{}, ErrUnknownAction
	}

	env := ActionEnvelope{Type: action.Type()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return ActionEnvelope{}, err
		}
		env.Payload = raw
	}
	return env, nil
}

func decodePayload[T any](e ActionEnvelope) (T, error) {
	var v T
	if len(e.Payload) == 0 {
		return v, fmt.Errorf("%w: %s requires a payload", ErrInvalidPayload, e.Type)
	}
	if err := json.Unmarshal(e.Payload, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, e.Type, err)
	}
	return v, nil
}
