package agent

import (
	"context"
	"errors"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/model"
	"gassist/provider/testutil"
	"gassist/tools"
)

func TestSessionRetainsHistory(t *testing.T) {
	mock := testutil.NewScriptedProvider(
		&model.Reply{Text: "first answer"},
		&model.Reply{Text: "second answer"},
	)
	loop := NewLoop(mock, tools.NewRegistry(), WithSystemPrompt("persona"))
	session := NewSession(loop)

	ctx := context.Background()

	text, err := session.Send(ctx, "first question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "first answer" {
		t.Errorf("text = %q", text)
	}

	if _, err := session.Send(ctx, "second question"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := session.Messages()
	wantRoles := []string{"system", "user", "assistant", "user", "assistant"}
	if len(msgs) != len(wantRoles) {
		t.Fatalf("history length = %d, want %d", len(msgs), len(wantRoles))
	}
	for i, role := range wantRoles {
		if msgs[i].Role != role {
			t.Errorf("turn %d role = %q, want %q", i, msgs[i].Role, role)
		}
	}
	if msgs[2].Content != "first answer" || msgs[4].Content != "second answer" {
		t.Errorf("assistant turns = %q, %q", msgs[2].Content, msgs[4].Content)
	}
}

// The earlier history must be visible to the provider on later turns.
func TestSessionHistoryReachesProvider(t *testing.T) {
	var secondCallMsgs []model.Message
	call := 0
	mock := testutil.NewMockProvider("mock-model")
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, schemas []mcptypes.Tool) (*model.Reply, error) {
		call++
		if call == 2 {
			secondCallMsgs = messages
		}
		return &model.Reply{Text: "ok"}, nil
	}

	loop := NewLoop(mock, tools.NewRegistry())
	session := NewSession(loop)
	ctx := context.Background()

	if _, err := session.Send(ctx, "remember this"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.Send(ctx, "what did I say?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(secondCallMsgs) != 3 {
		t.Fatalf("second call saw %d turns, want 3", len(secondCallMsgs))
	}
	if secondCallMsgs[0].Content != "remember this" {
		t.Errorf("first turn = %q", secondCallMsgs[0].Content)
	}
}

// A failed round leaves the history exactly as it was before the call.
func TestSessionRollbackOnError(t *testing.T) {
	call := 0
	mock := testutil.NewMockProvider("mock-model")
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, schemas []mcptypes.Tool) (*model.Reply, error) {
		call++
		if call == 2 {
			return nil, errors.New("upstream 500")
		}
		return &model.Reply{Text: "ok"}, nil
	}

	loop := NewLoop(mock, tools.NewRegistry())
	session := NewSession(loop)
	ctx := context.Background()

	if _, err := session.Send(ctx, "good round"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := session.Messages()

	text, err := session.Send(ctx, "bad round")
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if text != "" {
		t.Errorf("text = %q, want empty on failure", text)
	}

	after := session.Messages()
	if len(after) != len(before) {
		t.Fatalf("history length changed on failed round: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].Role != before[i].Role || after[i].Content != before[i].Content {
			t.Errorf("turn %d changed on failed round", i)
		}
	}
}

func TestSessionRollbackOnUnknownTool(t *testing.T) {
	mock := testutil.NewScriptedProvider(
		&model.Reply{ToolCalls: []model.ToolCall{{Name: "no_such_tool"}}},
	)
	loop := NewLoop(mock, tools.NewRegistry())
	session := NewSession(loop)

	_, err := session.Send(context.Background(), "try a tool")
	if !errors.Is(err, tools.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if got := len(session.Messages()); got != 0 {
		t.Errorf("history length = %d, want 0 after failed first round", got)
	}
}

func TestSessionIDUnique(t *testing.T) {
	loop := NewLoop(testutil.NewMockProvider("mock-model"), tools.NewRegistry())

	a := NewSession(loop)
	b := NewSession(loop)
	if a.ID() == "" {
		t.Error("session ID is empty")
	}
	if a.ID() == b.ID() {
		t.Error("two sessions share an ID")
	}
}

func TestSessionMessagesIsCopy(t *testing.T) {
	loop := NewLoop(testutil.NewScriptedProvider(&model.Reply{Text: "ok"}), tools.NewRegistry())
	session := NewSession(loop)

	if _, err := session.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := session.Messages()
	msgs[0].Content = "mutated"
	if session.Messages()[0].Content == "mutated" {
		t.Error("Messages returned a view into internal state")
	}
}
