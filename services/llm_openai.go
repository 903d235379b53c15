package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"dining-agent/config"
	"dining-agent/models"
)

// OpenAIProvider talks to the OpenAI chat completions API or any server
// exposing the same API (llama.cpp, Ollama).
type OpenAIProvider struct {
	client openai.Client
	model  string
	hasKey bool
}

// NewOpenAIProvider creates the provider. A missing key is reported on the
// first call, not here.
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAIAPIKey)}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  cfg.AIModel,
		hasKey: cfg.OpenAIAPIKey != "",
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req ModelRequest) (*ModelReply, error) {
	if !p.hasKey {
		return nil, models.ErrMissingCredential
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: openAIMessages(req.Messages),
	}
	for _, t := range req.Tools {
		params.Tools = append(params.Tools, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  shared.FunctionParameters(t.Parameters),
		}))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, models.ErrEmptyModelReply
	}

	message := completion.Choices[0].Message
	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]
		return &ModelReply{Call: &FunctionCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		}}, nil
	}
	return &ModelReply{Text: message.Content}, nil
}

func openAIMessages(turns []models.ChatTurn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case models.RoleSystem:
			messages = append(messages, openai.SystemMessage(t.Content))
		case models.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}
	return messages
}
