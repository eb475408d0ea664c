package model

import (
	"strings"
	"testing"
)

func TestFormatToolCall(t *testing.T) {
	call := ToolCall{
		Name:      "execute_shell_command",
		Arguments: map[string]any{"command": "ls -la"},
	}

	got := FormatToolCall(call)
	if !strings.HasPrefix(got, "[tool call] execute_shell_command") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `"command":"ls -la"`) {
		t.Errorf("arguments missing from %q", got)
	}
}

func TestFormatToolCallNoArguments(t *testing.T) {
	got := FormatToolCall(ToolCall{Name: "ping"})
	if !strings.Contains(got, "ping") {
		t.Errorf("tool name missing from %q", got)
	}
}
