package provider

import (
	"testing"

	"github.com/ollama/ollama/api"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/provider/testutil"
)

func TestConvertToolsToOllama(t *testing.T) {
	tests := []struct {
		name     string
		input    []mcptypes.Tool
		expected int // expected tool count
		validate func(t *testing.T, result []api.Tool)
	}{
		{
			name:     "empty tools",
			input:    []mcptypes.Tool{},
			expected: 0,
			validate: func(t *testing.T, result []api.Tool) {
				if result != nil {
					t.Errorf("expected nil, got %d tools", len(result))
				}
			},
		},
		{
			name:     "shell tool",
			input:    []mcptypes.Tool{testutil.ShellToolSchema()},
			expected: 1,
			validate: func(t *testing.T, result []api.Tool) {
				if result[0].Type != "function" {
					t.Errorf("expected type 'function', got %q", result[0].Type)
				}
				if result[0].Function.Name != "execute_shell_command" {
					t.Errorf("expected name 'execute_shell_command', got %q", result[0].Function.Name)
				}
				params := result[0].Function.Parameters
				if params.Type != "object" {
					t.Errorf("expected type 'object', got %q", params.Type)
				}
				if len(params.Required) != 1 || params.Required[0] != "command" {
					t.Errorf("required = %v, want [command]", params.Required)
				}
				prop, ok := params.Properties["command"]
				if !ok {
					t.Fatal("command property not found")
				}
				if prop.Description != "The command to execute." {
					t.Errorf("command description mismatch: %q", prop.Description)
				}
				if len(prop.Type) != 1 || prop.Type[0] != "string" {
					t.Errorf("command type = %v, want [string]", prop.Type)
				}
			},
		},
		{
			name: "tool with enum property",
			input: []mcptypes.Tool{
				{
					Name:        "set_mode",
					Description: "Set the mode",
					InputSchema: mcptypes.ToolInputSchema{
						Type: "object",
						Properties: map[string]any{
							"mode": map[string]any{
								"type":        "string",
								"description": "The mode to set",
								"enum":        []any{"fast", "slow", "auto"},
							},
						},
						Required: []string{"mode"},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []api.Tool) {
				prop, ok := result[0].Function.Parameters.Properties["mode"]
				if !ok {
					t.Fatal("mode property not found")
				}
				if len(prop.Enum) != 3 {
					t.Errorf("expected 3 enum values, got %d", len(prop.Enum))
				}
			},
		},
		{
			name: "multiple tools preserve order",
			input: []mcptypes.Tool{
				{Name: "tool1", InputSchema: mcptypes.ToolInputSchema{Type: "object"}},
				{Name: "tool2", InputSchema: mcptypes.ToolInputSchema{Type: "object"}},
			},
			expected: 2,
			validate: func(t *testing.T, result []api.Tool) {
				if result[0].Function.Name != "tool1" || result[1].Function.Name != "tool2" {
					t.Errorf("tool order = [%s %s]", result[0].Function.Name, result[1].Function.Name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertToolsToOllama(tt.input)
			if len(result) != tt.expected {
				t.Fatalf("expected %d tools, got %d", tt.expected, len(result))
			}
			tt.validate(t, result)
		})
	}
}

func TestConvertToolsToOpenAIFormat(t *testing.T) {
	if got := ConvertToolsToOpenAIFormat(nil); got != nil {
		t.Errorf("expected nil for no tools, got %d", len(got))
	}

	result := ConvertToolsToOpenAIFormat([]mcptypes.Tool{testutil.ShellToolSchema()})
	if len(result) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(result))
	}

	if result[0].OfFunction == nil {
		t.Fatal("expected a function tool")
	}
	fn := result[0].OfFunction.Function
	if fn.Name != "execute_shell_command" {
		t.Errorf("name = %q", fn.Name)
	}
	if fn.Description.Value != "Executes a command in the system's shell and returns the output." {
		t.Errorf("description = %q", fn.Description.Value)
	}
	if fn.Parameters["type"] != "object" {
		t.Errorf("parameters type = %v", fn.Parameters["type"])
	}
	required, ok := fn.Parameters["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "command" {
		t.Errorf("required = %v, want [command]", fn.Parameters["required"])
	}
}

func TestConvertToolsToAnthropicFormat(t *testing.T) {
	if got := ConvertToolsToAnthropicFormat(nil); got != nil {
		t.Errorf("expected nil for no tools, got %d", len(got))
	}

	result := ConvertToolsToAnthropicFormat([]mcptypes.Tool{testutil.ShellToolSchema()})
	if len(result) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(result))
	}

	tool := result[0].OfTool
	if tool == nil {
		t.Fatal("expected OfTool to be set")
	}
	if tool.Name != "execute_shell_command" {
		t.Errorf("name = %q", tool.Name)
	}
	if tool.Description.Value != "Executes a command in the system's shell and returns the output." {
		t.Errorf("description = %q", tool.Description.Value)
	}
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "command" {
		t.Errorf("required = %v, want [command]", tool.InputSchema.Required)
	}
	props, ok := tool.InputSchema.Properties.(map[string]any)
	if !ok {
		t.Fatalf("properties type = %T", tool.InputSchema.Properties)
	}
	if _, ok := props["command"]; !ok {
		t.Error("command property not found")
	}
}
