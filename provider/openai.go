package provider

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"gassist/model"
)

// OpenAIProvider implements model.Provider using OpenAI's official Go SDK.
// It also serves any OpenAI-compatible endpoint; see NewOpenRouterProvider.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	baseURL string
	apiKey  string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
//
// Parameters:
//   - baseURL: API base URL (default: "https://api.openai.com/v1")
//   - apiKey: API key (required)
//   - model: Initial model to use (default: "gpt-4o")
func NewOpenAIProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client:  client,
		model:   model,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// NewOpenRouterProvider creates an OpenAI provider pointed at OpenRouter.
// OpenRouter's API is wire-compatible with OpenAI's, so the only
// differences are the base URL and the default model.
func NewOpenRouterProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if model == "" {
		model = "meta-llama/llama-3.2-90b-instruct"
	}
	return NewOpenAIProvider(baseURL, apiKey, model)
}

// Chat implements model.Provider.Chat.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error) {
	// Prepend tool instructions as a system message when tools are present.
	messagesWithInstructions := messages
	if len(tools) > 0 {
		toolInstruction := model.Message{
			Role:    "system",
			Content: buildToolInstructions(tools),
		}
		messagesWithInstructions = append([]model.Message{toolInstruction}, messages...)
	}

	params := openai.ChatCompletionNewParams{
		Messages: ConvertToOpenAIMessages(messagesWithInstructions),
		Model:    openai.ChatModel(p.model),
	}

	if len(tools) > 0 {
		params.Tools = ConvertToolsToOpenAIFormat(tools)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	reply := &model.Reply{}
	if len(completion.Choices) == 0 {
		// Malformed reply: degrade to an empty final answer.
		return reply, nil
	}

	message := completion.Choices[0].Message
	reply.Text = message.Content
	for _, toolCall := range message.ToolCalls {
		if toolCall.Function.Name == "" {
			continue
		}
		reply.ToolCalls = append(reply.ToolCalls, model.ToolCall{
			Name:      toolCall.Function.Name,
			Arguments: ParseToolArguments(toolCall.Function.Arguments),
		})
	}

	return reply, nil
}

// GetModel implements model.Provider.GetModel.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}

// Ping implements model.Provider.Ping by listing models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("OpenAI ping failed: %w", err)
	}
	return nil
}
