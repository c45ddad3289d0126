package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/store"
	"github.com/thenoetrevino/sage/internal/types"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	n := 0
	ids := types.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	a, err := app.New(context.Background(), store.New(database.NewMemoryStore(), ids), app.WithIDGenerator(ids))
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"board not found", fmt.Errorf("%w: x", models.ErrBoardNotFound), ExitNotFound},
		{"message not found", models.ErrMessageNotFound, ExitNotFound},
		{"empty content", models.ErrEmptyContent, ExitValidation},
		{"usage", UsageError(errors.New("bad flag")), ExitUsage},
		{"invalid config", fmt.Errorf("%w: SAGE_REDIS_DB", config.ErrInvalidConfig), ExitDataErr},
		{"persist", fmt.Errorf("%w: disk full", app.ErrPersist), ExitError},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(models.ErrColumnNotFound); got != "COLUMN_NOT_FOUND" {
		t.Errorf("ErrorCode = %q", got)
	}
	if got := ErrorCode(fmt.Errorf("%w: x", app.ErrPersist)); got != "STORAGE_ERROR" {
		t.Errorf("ErrorCode = %q", got)
	}
}

func TestFailMarksReported(t *testing.T) {
	f := &OutputFormatter{Quiet: true}
	err := Fail(f, "CARD_NOT_FOUND", models.ErrTaskNotFound)

	if !IsReported(err) {
		t.Error("expected error to be marked reported")
	}
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Error("expected the cause to be preserved")
	}
	if ExitCode(err) != ExitNotFound {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitNotFound)
	}
	if IsReported(errors.New("plain")) {
		t.Error("plain errors are not reported")
	}
}

func TestResolveBoard(t *testing.T) {
	a := newApp(t)

	b, err := ResolveBoard(a, "")
	if err != nil || b.Name != "Board A" {
		t.Fatalf("ResolveBoard(\"\") = %q, %v", b.Name, err)
	}

	b, err = ResolveBoard(a, "board b")
	if err != nil || b.Name != "Board B" {
		t.Fatalf("ResolveBoard by name = %q, %v", b.Name, err)
	}
	if active, _ := a.ActiveBoard(); active.ID != b.ID {
		t.Error("resolved board should become active")
	}

	if _, err := ResolveBoard(a, "nope"); !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestResolveColumn(t *testing.T) {
	board := models.NewBoard("b", "Board")

	tests := []struct {
		ref  string
		want types.ColumnID
	}{
		{"inbox", types.InboxColumn},
		{"To Do", types.TodoColumn},
		{"in progress", types.InProgressColumn},
		{"4", types.DoneColumn},
	}
	for _, tt := range tests {
		col, err := ResolveColumn(board, tt.ref)
		if err != nil || col.ID != tt.want {
			t.Errorf("ResolveColumn(%q) = %q, %v; want %q", tt.ref, col.ID, err, tt.want)
		}
	}

	for _, ref := range []string{"0", "5", "review"} {
		if _, err := ResolveColumn(board, ref); !errors.Is(err, models.ErrColumnNotFound) {
			t.Errorf("ResolveColumn(%q): expected ErrColumnNotFound, got %v", ref, err)
		}
	}
}

func TestResolveConversation(t *testing.T) {
	a := newApp(t)

	if _, err := ResolveConversation(a, ""); !errors.Is(err, models.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound without conversations, got %v", err)
	}

	res, err := a.AddChatMessage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("AddChatMessage failed: %v", err)
	}

	conv, err := ResolveConversation(a, "")
	if err != nil || conv.ID != res.Conversation.ID {
		t.Errorf("ResolveConversation(\"\") = %q, %v", conv.ID, err)
	}
	conv, err = ResolveConversation(a, string(res.Conversation.ID))
	if err != nil || len(conv.Messages) != 1 {
		t.Errorf("ResolveConversation(id) = %+v, %v", conv, err)
	}
}

func TestParsePosition(t *testing.T) {
	if i, err := ParsePosition("3"); err != nil || i != 2 {
		t.Errorf("ParsePosition(3) = %d, %v", i, err)
	}
	for _, in := range []string{"0", "-1", "x"} {
		if _, err := ParsePosition(in); ExitCode(err) != ExitUsage {
			t.Errorf("ParsePosition(%q): expected usage error, got %v", in, err)
		}
	}
}
