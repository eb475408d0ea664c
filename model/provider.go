package model

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Provider abstracts LLM provider implementations (Ollama, OpenAI,
// OpenRouter, Anthropic) behind provider-agnostic types.
//
// This interface lives in the model package (not the provider package) to
// avoid import cycles: provider implementations import model, and callers
// can use the interface without importing any provider.
type Provider interface {
	// Chat sends the ordered conversation plus the advertised tool schemas
	// and returns the provider's complete reply. Implementations block for
	// the duration of the remote call and honor ctx cancellation.
	//
	// A structurally malformed provider response (no candidates, no
	// content) is not an error: it yields an empty Reply so callers can
	// degrade to an empty final answer.
	Chat(ctx context.Context, messages []Message, tools []mcptypes.Tool) (*Reply, error)

	// GetModel returns the currently selected model name.
	GetModel() string

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// Reply is one complete provider response: the text fragments concatenated
// in order, plus any tool calls the model requested.
type Reply struct {
	Text      string
	ToolCalls []ToolCall
}
