package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dining-agent/models"
)

func newTestAgent(provider Provider) *Agent {
	agent := NewAgent(provider, NewToolRegistry(testLogger()), testLogger())
	agent.now = func() time.Time { return time.Date(2025, 3, 14, 19, 30, 5, 0, time.UTC) }
	return agent
}

func TestProcessMessage_DirectReply(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(func(req ModelRequest) bool {
		last := req.Messages[len(req.Messages)-1]
		system := req.Messages[len(req.Messages)-2]
		return withTools(req) && last.Content == "hi" &&
			system.Content == "You are a restaurant reservation agent. Always use tools if needed. Date: 2025-03-14"
	})).Return(&ModelReply{Text: "Hello! How can I help?"}, nil).Once()

	state := NewAppState(testCatalog())
	reply, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help?", reply)
	assert.Equal(t, []models.ChatTurn{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "Hello! How can I help?"},
	}, state.Transcript())
	assert.Empty(t, state.Snapshot().IntentLog)
	provider.AssertExpectations(t)
	provider.AssertNumberOfCalls(t, "Complete", 1)
}

func TestProcessMessage_HistoryPrecedesSystemPrompt(t *testing.T) {
	provider := new(MockProvider)
	var captured ModelRequest
	provider.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(ModelRequest) }).
		Return(&ModelReply{Text: "ok"}, nil)

	state := NewAppState(testCatalog())
	state.AppendTurn(models.RoleUser, "earlier")
	state.AppendTurn(models.RoleAssistant, "answer")

	_, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "now")
	require.NoError(t, err)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, models.ChatTurn{Role: models.RoleUser, Content: "earlier"}, captured.Messages[0])
	assert.Equal(t, models.ChatTurn{Role: models.RoleAssistant, Content: "answer"}, captured.Messages[1])
	assert.Equal(t, models.RoleSystem, captured.Messages[2].Role)
	assert.Equal(t, models.ChatTurn{Role: models.RoleUser, Content: "now"}, captured.Messages[3])
	assert.Len(t, captured.Tools, 2)
}

func TestProcessMessage_ToolCall(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(withTools)).
		Return(&ModelReply{Call: &FunctionCall{
			Name:      "make_reservation",
			Arguments: `{"restaurant_id": 7, "party_size": 10, "time": "8pm"}`,
		}}, nil).Once()

	var followUp ModelRequest
	provider.On("Complete", mock.Anything, mock.MatchedBy(withoutTools)).
		Run(func(args mock.Arguments) { followUp = args.Get(1).(ModelRequest) }).
		Return(&ModelReply{Text: "You're booked!"}, nil).Once()

	state := NewAppState(testCatalog())
	reply, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "Book venue 7 for 10 at 8pm")

	require.NoError(t, err)
	assert.Equal(t, "You're booked!", reply)
	provider.AssertExpectations(t)

	snap := state.Snapshot()
	require.Len(t, snap.Reservations, 1)
	assert.Equal(t, 35000, snap.Reservations[0].Revenue)
	assert.Len(t, snap.Transcript, 2)

	require.Len(t, snap.IntentLog, 1)
	assert.Equal(t, "19:30:05", snap.IntentLog[0].Timestamp)
	assert.Equal(t, "make_reservation", snap.IntentLog[0].Intent)
	assert.JSONEq(t, `{"restaurant_id": 7, "party_size": 10, "time": "8pm"}`, snap.IntentLog[0].Parameters)

	require.Len(t, followUp.Messages, 3)
	assert.Equal(t, models.RoleSystem, followUp.Messages[0].Role)
	assert.Equal(t, models.ChatTurn{Role: models.RoleUser, Content: "Book venue 7 for 10 at 8pm"}, followUp.Messages[1])
	assert.Equal(t, models.RoleAssistant, followUp.Messages[2].Role)

	var payload models.ReservationConfirmation
	require.NoError(t, json.Unmarshal([]byte(followUp.Messages[2].Content), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, snap.Reservations[0].ID, payload.ReservationID)
}

func TestProcessMessage_ToolErrorIsRecoverable(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(withTools)).
		Return(&ModelReply{Call: &FunctionCall{Name: "make_reservation", Arguments: `{"restaurant_id": 7, "party_size": 50, "time": "8pm"}`}}, nil).Once()
	provider.On("Complete", mock.Anything, mock.MatchedBy(func(req ModelRequest) bool {
		return withoutTools(req) && req.Messages[2].Content == `{"error":"Capacity exceeded."}`
	})).Return(&ModelReply{Text: "Sorry, that venue only seats 40."}, nil).Once()

	state := NewAppState(testCatalog())
	reply, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "Book 7 for 50")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, that venue only seats 40.", reply)
	assert.Empty(t, state.Reservations())
	provider.AssertExpectations(t)
}

func TestProcessMessage_ProviderFailure(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything).Return(nil, models.ErrMissingCredential).Once()

	state := NewAppState(testCatalog())
	_, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "hi")

	require.ErrorIs(t, err, models.ErrMissingCredential)
	assert.Equal(t, []models.ChatTurn{{Role: models.RoleUser, Content: "hi"}}, state.Transcript())
	provider.AssertNumberOfCalls(t, "Complete", 1)
}

func TestProcessMessage_FollowUpFailure(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(withTools)).
		Return(&ModelReply{Call: &FunctionCall{Name: "search_restaurants", Arguments: `{"cuisine": "thai"}`}}, nil).Once()
	provider.On("Complete", mock.Anything, mock.MatchedBy(withoutTools)).
		Return(nil, errors.New("connection reset")).Once()

	state := NewAppState(testCatalog())
	_, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "thai food?")

	require.Error(t, err)
	snap := state.Snapshot()
	assert.Len(t, snap.Transcript, 1)
	assert.Len(t, snap.IntentLog, 1)
	provider.AssertExpectations(t)
}

func TestProcessMessage_MalformedArguments(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.MatchedBy(withTools)).
		Return(&ModelReply{Call: &FunctionCall{Name: "search_restaurants", Arguments: `{"cuisine": `}}, nil).Once()

	state := NewAppState(testCatalog())
	_, err := newTestAgent(provider).ProcessMessage(context.Background(), state, "food")

	require.Error(t, err)
	snap := state.Snapshot()
	assert.Len(t, snap.Transcript, 1)
	assert.Empty(t, snap.IntentLog)
	provider.AssertNumberOfCalls(t, "Complete", 1)
}
