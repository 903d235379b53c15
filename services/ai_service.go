package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dining-agent/models"
)

const (
	intentTimeLayout = "15:04:05"

	followUpInstruction = "You are a restaurant reservation agent. The last message holds the result of the tool you called. " +
		"Use it to answer the guest in a friendly, concise way."
)

// Agent relays guest messages to the model and executes the tools it calls
type Agent struct {
	provider Provider
	tools    *ToolRegistry
	logger   *slog.Logger
	now      func() time.Time
}

// NewAgent creates the dialogue relay
func NewAgent(provider Provider, tools *ToolRegistry, logger *slog.Logger) *Agent {
	return &Agent{
		provider: provider,
		tools:    tools,
		logger:   logger.With(slog.String("component", "agent")),
		now:      time.Now,
	}
}

// ProcessMessage runs one dialogue turn against the session state and
// returns the reply shown to the guest. On error the user message stays in
// the transcript and no assistant turn is recorded.
func (a *Agent) ProcessMessage(ctx context.Context, state *AppState, message string) (string, error) {
	state.turnMu.Lock()
	defer state.turnMu.Unlock()

	logger := a.logger.With(slog.String("method", "ProcessMessage"))

	prior := state.Transcript()
	state.AppendTurn(models.RoleUser, message)

	reply, err := a.provider.Complete(ctx, ModelRequest{
		Messages: a.buildMessages(prior, message),
		Tools:    a.tools.Specs(),
	})
	modelRequests.WithLabelValues(stageInitial, outcome(err)).Inc()
	if err != nil {
		logger.Error("Model request failed", slog.Any("error", err))
		return "", fmt.Errorf("AI provider error: %w", err)
	}

	final := reply.Text
	if reply.Call != nil {
		final, err = a.runTool(ctx, state, message, reply.Call)
		if err != nil {
			logger.Error("Tool round trip failed", slog.String("tool", reply.Call.Name), slog.Any("error", err))
			return "", err
		}
	}

	state.AppendTurn(models.RoleAssistant, final)
	logger.Info("Turn completed", slog.Bool("tool_used", reply.Call != nil))
	return final, nil
}

// buildMessages creates the first request: history, system prompt, then the new message
func (a *Agent) buildMessages(prior []models.ChatTurn, message string) []models.ChatTurn {
	messages := make([]models.ChatTurn, 0, len(prior)+2)
	messages = append(messages, prior...)
	messages = append(messages,
		models.ChatTurn{Role: models.RoleSystem, Content: a.buildSystemPrompt()},
		models.ChatTurn{Role: models.RoleUser, Content: message},
	)
	return messages
}

// buildSystemPrompt creates the system prompt with today's date
func (a *Agent) buildSystemPrompt() string {
	return fmt.Sprintf("You are a restaurant reservation agent. Always use tools if needed. Date: %s",
		a.now().Format("2006-01-02"))
}

// runTool executes the requested tool and asks the model to phrase the result
func (a *Agent) runTool(ctx context.Context, state *AppState, message string, call *FunctionCall) (string, error) {
	var arguments map[string]any
	if err := json.Unmarshal([]byte(call.Arguments), &arguments); err != nil {
		return "", fmt.Errorf("decode arguments of %s: %w", call.Name, err)
	}
	if arguments == nil {
		arguments = map[string]any{}
	}

	params, err := json.Marshal(arguments)
	if err != nil {
		return "", fmt.Errorf("encode arguments of %s: %w", call.Name, err)
	}
	state.AppendIntent(models.IntentLogEntry{
		Timestamp:  a.now().Format(intentTimeLayout),
		Intent:     call.Name,
		Parameters: string(params),
	})

	result := a.tools.Dispatch(state, call.Name, arguments)
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result of %s: %w", call.Name, err)
	}

	reply, err := a.provider.Complete(ctx, ModelRequest{
		Messages: []models.ChatTurn{
			{Role: models.RoleSystem, Content: followUpInstruction},
			{Role: models.RoleUser, Content: message},
			{Role: models.RoleAssistant, Content: string(payload)},
		},
	})
	modelRequests.WithLabelValues(stageFollowUp, outcome(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("AI provider error: %w", err)
	}
	return reply.Text, nil
}
