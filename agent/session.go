package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gassist/config"
	"gassist/model"
)

// Session is a stateful conversation: history is retained across user
// turns for the lifetime of the process. A session is owned by a single
// caller; it is not safe for concurrent use and does not need to be, since
// each conversation has exactly one writer.
type Session struct {
	id   string
	loop *Loop
	msgs []model.Message
}

// NewSession starts a fresh conversation on the given loop.
func NewSession(loop *Loop) *Session {
	return &Session{
		id:   uuid.NewString(),
		loop: loop,
		msgs: loop.seed(),
	}
}

// ID returns the session identifier (used in debug logs).
func (s *Session) ID() string {
	return s.id
}

// Send appends a user turn, drives the loop to a final answer, and commits
// the new turns to the session history. When the round fails - remote
// error, unknown tool, iteration cap - the history is left exactly as it
// was before the call, so one bad round never corrupts the conversation.
func (s *Session) Send(ctx context.Context, userText string) (string, error) {
	msgs := append(s.msgs, model.Message{
		Role:      "user",
		Content:   userText,
		Timestamp: time.Now(),
	})

	text, final, err := s.loop.run(ctx, msgs)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Session %s] round failed, history unchanged: %v", s.id, err)
		}
		return "", err
	}

	s.msgs = append(final, model.Message{
		Role:      "assistant",
		Content:   text,
		Timestamp: time.Now(),
	})
	return text, nil
}

// Messages returns a copy of the conversation history.
func (s *Session) Messages() []model.Message {
	out := make([]model.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}
