// Package agent implements the control algorithm that mediates repeated
// model/tool exchanges until the model produces a final text answer.
//
// One iteration is: send the conversation, classify the reply, and either
// return the final text or execute the requested tool, append the
// action-request and tool-result turns, and go again. The same algorithm
// backs both the stateless single-shot path (Loop.Run) and the stateful
// chat path (Session.Send); they differ only in where the conversation
// lives.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/config"
	"gassist/model"
	"gassist/tools"
)

// ErrMaxTurns is returned when the model keeps requesting tools past the
// configured iteration cap instead of producing a final answer.
var ErrMaxTurns = errors.New("exceeded max turns")

// DefaultMaxTurns bounds model/tool round-trips per user prompt.
const DefaultMaxTurns = 25

// Loop runs the agent algorithm against one provider and one tool
// registry. A Loop is stateless and safe to share across sessions; each
// conversation is owned by its caller.
type Loop struct {
	provider       model.Provider
	registry       *tools.Registry
	systemPrompt   string
	maxTurns       int
	requestTimeout time.Duration
}

// Option configures a Loop.
type Option func(*Loop)

// WithSystemPrompt seeds every conversation with a system turn.
func WithSystemPrompt(prompt string) Option {
	return func(l *Loop) { l.systemPrompt = prompt }
}

// WithMaxTurns caps model/tool round-trips per prompt. Values below 1 keep
// the default.
func WithMaxTurns(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.maxTurns = n
		}
	}
}

// WithRequestTimeout bounds each individual provider call. Zero disables
// the per-request deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(l *Loop) { l.requestTimeout = d }
}

// NewLoop creates an agent loop over the given provider and registry.
func NewLoop(p model.Provider, registry *tools.Registry, opts ...Option) *Loop {
	l := &Loop{
		provider: p,
		registry: registry,
		maxTurns: DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run performs one stateless round: a fresh conversation containing only
// the user prompt is built, driven to completion, and discarded.
func (l *Loop) Run(ctx context.Context, prompt string) (string, error) {
	msgs := append(l.seed(), model.Message{
		Role:      "user",
		Content:   prompt,
		Timestamp: time.Now(),
	})

	text, _, err := l.run(ctx, msgs)
	return text, err
}

// seed returns the initial conversation turns (the system prompt, when
// configured).
func (l *Loop) seed() []model.Message {
	if l.systemPrompt == "" {
		return nil
	}
	return []model.Message{{
		Role:      "system",
		Content:   l.systemPrompt,
		Timestamp: time.Now(),
	}}
}

// run drives the conversation until the model emits a final text answer,
// a tool resolution fails, or the iteration cap is hit. It returns the
// final text and the grown conversation; on error the returned
// conversation contains only fully completed turns, never a partial one.
func (l *Loop) run(ctx context.Context, msgs []model.Message) (string, []model.Message, error) {
	descriptors := l.registry.Descriptors()

	for turn := 0; turn < l.maxTurns; turn++ {
		reply, err := l.chat(ctx, msgs, descriptors)
		if err != nil {
			return "", msgs, fmt.Errorf("model request failed: %w", err)
		}

		resp := Classify(reply)
		if resp.Kind == FinalText {
			return resp.Text, msgs, nil
		}

		tool, err := l.registry.Resolve(resp.Action.Name)
		if err != nil {
			return "", msgs, err
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Agent] turn %d: invoking %s", turn+1, resp.Action.Name)
		}

		result := tool.Invoke(ctx, resp.Action.Arguments)

		// Keep any prose the model sent alongside the request.
		content := model.FormatToolCall(resp.Action)
		if resp.Text != "" {
			content = resp.Text + "\n" + content
		}

		msgs = append(msgs,
			model.Message{
				Role:      "assistant",
				Content:   content,
				ToolCalls: []model.ToolCall{resp.Action},
				Timestamp: time.Now(),
			},
			model.Message{
				Role:      "tool",
				ToolName:  resp.Action.Name,
				Content:   result,
				Timestamp: time.Now(),
			},
		)
	}

	return "", msgs, fmt.Errorf("%w (%d)", ErrMaxTurns, l.maxTurns)
}

// chat performs one provider call under the configured per-request
// deadline.
func (l *Loop) chat(ctx context.Context, msgs []model.Message, descriptors []mcptypes.Tool) (*model.Reply, error) {
	if l.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.requestTimeout)
		defer cancel()
	}
	return l.provider.Chat(ctx, msgs, descriptors)
}
