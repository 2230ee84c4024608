package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insider/internal/app"
	"insider/internal/domain"
)

type receivedMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestClient(t *testing.T) (*Client, *app.GameSession) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := app.NewGameSession("WSROOM", app.SessionOptions{
		Clock:  clockwork.NewFakeClock(),
		Topics: domain.TopicPool{"Mango"},
		Rand:   rand.New(rand.NewPCG(5, 6)),
	}, logger)
	t.Cleanup(session.Close)
	return newClient(nil, session, "client-1", logger), session
}

func nextMessage(t *testing.T, c *Client) receivedMessage {
	t.Helper()
	select {
	case data := <-c.send:
		var msg receivedMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message sent")
		return receivedMessage{}
	}
}

func assertNoMessage(t *testing.T, c *Client) {
	t.Helper()
	select {
	case data := <-c.send:
		t.Fatalf("unexpected message: %s", data)
	default:
	}
}

func errorCode(t *testing.T, msg receivedMessage) string {
	t.Helper()
	require.Equal(t, MsgError, msg.Type)
	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	return payload.Code
}

func TestClient_Ping(t *testing.T) {
	c, _ := newTestClient(t)
	c.handleMessage([]byte(`{"type":"ping"}`))
	assert.Equal(t, MsgPong, nextMessage(t, c).Type)
}

func TestClient_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"not json", `nope`, ErrCodeInvalidMessage},
		{"unknown type", `{"type":"shout"}`, ErrCodeInvalidMessage},
		{"missing payload", `{"type":"set_topic"}`, ErrCodeInvalidMessage},
		{"bad payload", `{"type":"set_insider_count","payload":{"count":"two"}}`, ErrCodeInvalidMessage},
		{"unknown action", `{"type":"dispatch","payload":{"type":"FLY"}}`, ErrCodeUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t)
			c.handleMessage([]byte(tt.data))
			assert.Equal(t, tt.code, errorCode(t, nextMessage(t, c)))
		})
	}
}

func TestClient_DispatchAppliesAction(t *testing.T) {
	c, session := newTestClient(t)

	c.handleMessage([]byte(`{"type":"dispatch","payload":{"type":"ADD_PLAYER_NAME","payload":"Aki"}}`))

	assertNoMessage(t, c)
	assert.Equal(t, []string{"Aki"}, session.Snapshot().PlayerNames)
}

func TestClient_StartGameErrors(t *testing.T) {
	c, session := newTestClient(t)
	session.Dispatch(domain.AddPlayerName{Name: "Aki"})

	c.handleMessage([]byte(`{"type":"start_game"}`))

	assert.Equal(t, ErrCodeInvalidAction, errorCode(t, nextMessage(t, c)))
	assert.Equal(t, domain.PhaseHome, session.GetPhase())
}

func TestClient_FullRound(t *testing.T) {
	c, session := newTestClient(t)
	for _, name := range []string{"Aki", "Ben", "Chie"} {
		session.Dispatch(domain.AddPlayerName{Name: name})
	}

	c.handleMessage([]byte(`{"type":"start_game"}`))
	assertNoMessage(t, c)
	require.Equal(t, domain.PhaseRoleCheck, session.GetPhase())

	c.handleMessage([]byte(`{"type":"ask_question","payload":{"playerName":"Aki","question":"Is it food?","answer":"はい"}}`))
	assert.Equal(t, ErrCodeInvalidPhase, errorCode(t, nextMessage(t, c)))

	session.Dispatch(domain.ChangePhase{Phase: domain.PhaseQuestion})
	c.handleMessage([]byte(`{"type":"ask_question","payload":{"playerName":"Aki","question":"Is it food?","answer":"はい"}}`))
	assertNoMessage(t, c)
	require.Len(t, session.Snapshot().History, 1)

	session.Dispatch(domain.ChangePhase{Phase: domain.PhaseGuessTopic})
	c.handleMessage([]byte(`{"type":"guess_topic","payload":{"guess":" mango "}}`))
	msg := nextMessage(t, c)
	require.Equal(t, MsgGuessResult, msg.Type)
	var guess GuessResultPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &guess))
	assert.True(t, guess.Correct)
	require.Equal(t, domain.PhaseInsiderGuess, session.GetPhase())

	c.handleMessage([]byte(`{"type":"submit_votes","payload":{"votes":{}}}`))
	msg = nextMessage(t, c)
	require.Equal(t, MsgVoteResult, msg.Type)
	var votes VoteResultPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &votes))
	assert.Equal(t, domain.ResultInsiderWin, votes.Tally.Winner)
	assert.Equal(t, domain.ResultInsiderWin.Label(), votes.ResultLabel)
	assert.Equal(t, domain.PhaseResult, session.GetPhase())
}

func TestClient_SendConnected(t *testing.T) {
	c, session := newTestClient(t)
	session.Dispatch(domain.AddAudienceName{Name: "Dai"})

	c.sendConnected()

	msg := nextMessage(t, c)
	require.Equal(t, MsgConnected, msg.Type)
	var payload ConnectedPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "client-1", payload.ClientID)
	assert.Equal(t, "WSROOM", payload.GameID)
	assert.Equal(t, []string{"Dai"}, payload.GameState.AudienceNames)
}

func TestClient_SendAfterClose(t *testing.T) {
	c, _ := newTestClient(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	require.NoError(t, c.Send(NewServerMessage(MsgPong, nil)))
	assertNoMessage(t, c)
}
