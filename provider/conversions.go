package provider

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	"gassist/model"
)

// ParseToolArguments parses a JSON arguments string into a map.
// Used by the OpenAI-compatible providers for tool call parsing.
// Unparseable input yields an empty map, never an error.
func ParseToolArguments(argsJSON string) map[string]any {
	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return make(map[string]any)
	}
	return args
}

// wrapToolResult renders a tool-result turn as plain text for providers
// whose message conversion has no native tool-result role.
func wrapToolResult(msg model.Message) string {
	if msg.ToolName == "" {
		return msg.Content
	}
	return fmt.Sprintf("Tool %q output:\n%s", msg.ToolName, msg.Content)
}

// ConvertToOllamaMessages converts G-Assist messages to Ollama api.Message.
//
// Ollama supports the "tool" role natively, so tool-result turns keep
// their role and carry the originating tool name. Timestamps are not
// preserved; the Ollama API has no field for them.
func ConvertToOllamaMessages(messages []model.Message) []api.Message {
	result := make([]api.Message, len(messages))
	for i, msg := range messages {
		result[i] = api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
		if msg.Role == "assistant" && len(msg.ToolCalls) > 0 {
			result[i].ToolCalls = convertToOllamaToolCalls(msg.ToolCalls)
		}
	}
	return result
}

// convertToOllamaToolCalls converts provider-agnostic tool calls to the
// Ollama API representation.
func convertToOllamaToolCalls(calls []model.ToolCall) []api.ToolCall {
	if len(calls) == 0 {
		return nil
	}

	result := make([]api.ToolCall, len(calls))
	for i, call := range calls {
		result[i] = api.ToolCall{
			Function: api.ToolCallFunction{
				Name:      call.Name,
				Arguments: call.Arguments,
			},
		}
	}
	return result
}

// convertFromOllamaToolCalls converts Ollama tool calls to the
// provider-agnostic representation. Returns nil for empty input,
// preserving the Ollama API's nil semantics.
func convertFromOllamaToolCalls(ollamaCalls []api.ToolCall) []model.ToolCall {
	if len(ollamaCalls) == 0 {
		return nil
	}

	result := make([]model.ToolCall, len(ollamaCalls))
	for i, call := range ollamaCalls {
		result[i] = model.ToolCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		}
	}
	return result
}

// ConvertToOpenAIMessages converts G-Assist messages to OpenAI format.
// Tool-result turns are sent as user messages carrying the tool name and
// output as text; the OpenAI tool role requires call IDs this
// conversation model does not track.
func ConvertToOpenAIMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case "system":
			result[i] = openai.SystemMessage(msg.Content)
		case "user":
			result[i] = openai.UserMessage(msg.Content)
		case "assistant":
			result[i] = openai.AssistantMessage(msg.Content)
		case "tool":
			result[i] = openai.UserMessage(wrapToolResult(msg))
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}

	return result
}

// convertToAnthropicMessages converts G-Assist messages to Anthropic
// format. Anthropic takes the system prompt as a separate parameter, so
// system turns are collected and returned alongside the message array.
func convertToAnthropicMessages(messages []model.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var systemBlocks []anthropic.TextBlockParam
	anthropicMsgs := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{
				Text: msg.Content,
			})

		case "user":
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)

		case "assistant":
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)),
			)

		case "tool":
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(wrapToolResult(msg))),
			)

		default:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)
		}
	}

	return anthropicMsgs, systemBlocks
}
