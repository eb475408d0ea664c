// Package provider implements the model.Provider interface for the LLM
// backends G-Assist can talk to (Anthropic, OpenAI, OpenRouter, Ollama).
//
// The provider layer owns all type conversions between G-Assist's
// provider-agnostic types (model.Message, model.ToolCall, mcp tool
// schemas) and each SDK's request/response types, so the agent loop never
// inspects provider-specific structures. See conversions.go and
// tool_converter.go.
package provider

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // For OpenAI/OpenRouter/Anthropic (unused for Ollama)
}
