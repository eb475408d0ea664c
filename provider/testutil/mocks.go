package testutil

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/model"
)

// MockProvider implements model.Provider for testing.
type MockProvider struct {
	// Configurable responses
	ChatFunc func(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error)
	PingFunc func(ctx context.Context) error

	// State
	currentModel string
	ChatCalls    int
}

// NewMockProvider creates a mock provider with default implementations.
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.ChatFunc = mock.defaultChat
	mock.PingFunc = mock.defaultPing
	return mock
}

// NewScriptedProvider creates a mock that plays back the given replies in
// order, one per Chat call. Calls past the end of the script return an
// empty reply.
func NewScriptedProvider(replies ...*model.Reply) *MockProvider {
	mock := NewMockProvider("mock-model")
	i := 0
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error) {
		if i >= len(replies) {
			return &model.Reply{}, nil
		}
		reply := replies[i]
		i++
		return reply, nil
	}
	return mock
}

func (m *MockProvider) defaultChat(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error) {
	return &model.Reply{Text: "Mock response"}, nil
}

func (m *MockProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Reply, error) {
	m.ChatCalls++
	return m.ChatFunc(ctx, messages, tools)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
