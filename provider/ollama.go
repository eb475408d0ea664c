package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"

	"gassist/model"
)

// OllamaProvider implements model.Provider against a local Ollama server.
// No API key is required.
type OllamaProvider struct {
	client  *api.Client
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: The Ollama server URL (default: "http://localhost:11434")
//   - model: The model name to use (default: "llama3.1:latest")
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &OllamaProvider{
		client:  api.NewClient(parsedURL, http.DefaultClient),
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat implements model.Provider.Chat with a non-streamed request.
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error) {
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: ConvertToOllamaMessages(messages),
		Tools:    ConvertToolsToOllama(tools),
		Stream:   func(b bool) *bool { return &b }(false),
	}

	reply := &model.Reply{}
	var text strings.Builder

	respFunc := func(resp api.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		reply.ToolCalls = append(reply.ToolCalls, convertFromOllamaToolCalls(resp.Message.ToolCalls)...)
		return nil
	}

	if err := p.client.Chat(ctx, req, respFunc); err != nil {
		return nil, fmt.Errorf("Ollama request failed: %w", err)
	}

	reply.Text = text.String()
	return reply, nil
}

// GetModel implements model.Provider.GetModel.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// Ping implements model.Provider.Ping by listing local models.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	if _, err := p.client.List(ctx); err != nil {
		return fmt.Errorf("Ollama ping failed: %w", err)
	}
	return nil
}
