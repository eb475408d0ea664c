package testutil

import (
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/model"
)

// TestMessages returns a sample conversation for testing.
func TestMessages() []model.Message {
	return []model.Message{
		{
			Role:      "user",
			Content:   "Hello, how are you?",
			Timestamp: time.Now(),
		},
		{
			Role:      "assistant",
			Content:   "I'm doing well, thank you!",
			Timestamp: time.Now(),
		},
		{
			Role:      "user",
			Content:   "Can you help me with a task?",
			Timestamp: time.Now(),
		},
	}
}

// SingleUserMessage returns a single user message for simple tests.
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{
			Role:      "user",
			Content:   content,
			Timestamp: time.Now(),
		},
	}
}

// ShellToolSchema returns a tool schema shaped like the shell tool for
// conversion tests.
func ShellToolSchema() mcptypes.Tool {
	return mcptypes.Tool{
		Name:        "execute_shell_command",
		Description: "Executes a command in the system's shell and returns the output.",
		InputSchema: mcptypes.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"command": map[string]any{
					"type":        "string",
					"description": "The command to execute.",
				},
			},
			Required: []string{"command"},
		},
	}
}
