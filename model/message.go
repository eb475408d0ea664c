package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message represents one turn in a conversation. Turns are append-only:
// once a message has been added to a conversation it is never mutated.
type Message struct {
	Role      string // "system", "user", "assistant" or "tool"
	Content   string
	ToolName  string     // set on tool-result turns
	ToolCalls []ToolCall // set on assistant turns that requested a tool
	Timestamp time.Time
}

// ToolCall is a provider-agnostic action request emitted by the model.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// FormatToolCall renders a tool call as conversation text so that
// providers without a native action-request role still see the request
// in the transcript.
func FormatToolCall(call ToolCall) string {
	args, err := json.Marshal(call.Arguments)
	if err != nil {
		return fmt.Sprintf("[tool call] %s", call.Name)
	}
	return fmt.Sprintf("[tool call] %s %s", call.Name, args)
}
