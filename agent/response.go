package agent

import (
	"strings"

	"gassist/model"
)

// ResponseKind discriminates what a provider reply asks the loop to do.
type ResponseKind int

const (
	// FinalText means the model produced its answer; the loop is done.
	FinalText ResponseKind = iota
	// RequestedAction means the model asked for a tool invocation.
	RequestedAction
)

// Response is the classified form of a provider reply. Classification
// happens exactly once, here, so the loop never probes reply structures.
type Response struct {
	Kind   ResponseKind
	Text   string         // trimmed final text; empty on malformed replies
	Action model.ToolCall // valid only when Kind == RequestedAction
}

// Classify inspects a provider reply and produces the discriminated form.
//
// The first well-formed tool call wins. Anything else - plain text, an
// empty reply, a nil reply from a misbehaving provider - degrades to
// FinalText with whatever trimmed text is present.
func Classify(reply *model.Reply) Response {
	if reply == nil {
		return Response{Kind: FinalText}
	}

	for _, call := range reply.ToolCalls {
		if call.Name != "" {
			return Response{
				Kind:   RequestedAction,
				Text:   strings.TrimSpace(reply.Text),
				Action: call,
			}
		}
	}

	return Response{
		Kind: FinalText,
		Text: strings.TrimSpace(reply.Text),
	}
}
