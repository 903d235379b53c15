package services

import (
	"context"
	"fmt"

	"dining-agent/config"
	"dining-agent/models"
)

// ModelRequest is one call to the model endpoint. A nil Tools list asks for
// plain text only.
type ModelRequest struct {
	Messages []models.ChatTurn
	Tools    []ToolSpec
}

// FunctionCall is a tool invocation requested by the model. Arguments is the
// raw JSON object text as produced by the model.
type FunctionCall struct {
	Name      string
	Arguments string
}

// ModelReply carries either text or a function call
type ModelReply struct {
	Text string
	Call *FunctionCall
}

// Provider abstracts the hosted model behind the relay
type Provider interface {
	Complete(ctx context.Context, req ModelRequest) (*ModelReply, error)
}

// NewProvider creates the provider selected in the configuration
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AIProvider)
	}
}
