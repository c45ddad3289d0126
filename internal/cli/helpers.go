package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// AddBoardFlag registers --board; an empty value means the first board
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("board", "b", "", "Board name or ID (default: first board)")
}

// Formatter builds an OutputFormatter from the output flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ExactArgs is cobra.ExactArgs with usage exit codes
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}

// MinimumNArgs is cobra.MinimumNArgs with usage exit codes
func MinimumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}

// MaximumNArgs is cobra.MaximumNArgs with usage exit codes
func MaximumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}

// ErrorCode names err for JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrBoardNotFound), errors.Is(err, models.ErrNoActiveBoard):
		return "BOARD_NOT_FOUND"
	case errors.Is(err, models.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND"
	case errors.Is(err, models.ErrTaskNotFound):
		return "CARD_NOT_FOUND"
	case errors.Is(err, models.ErrConversationNotFound):
		return "CHAT_NOT_FOUND"
	case errors.Is(err, models.ErrMessageNotFound):
		return "MESSAGE_NOT_FOUND"
	case errors.Is(err, models.ErrEmptyContent):
		return "EMPTY_CONTENT"
	case errors.Is(err, app.ErrPersist):
		return "STORAGE_ERROR"
	case errors.Is(err, config.ErrInvalidConfig):
		return "INVALID_CONFIG"
	case ExitCode(err) == ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}

// Fail writes err through the formatter and returns it marked as reported
func Fail(f *OutputFormatter, code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		return err
	}
	return &ExitCodeError{Code: ExitCode(err), Err: err, Reported: true}
}

// ResolveBoard finds a board by ID or case-insensitive name and makes it
// active. An empty ref selects the first board.
func ResolveBoard(a *app.App, ref string) (models.Board, error) {
	boards := a.Boards()
	if len(boards) == 0 {
		return models.Board{}, models.ErrNoActiveBoard
	}

	board := boards[0]
	if ref != "" {
		found := false
		for _, b := range boards {
			if string(b.ID) == ref || strings.EqualFold(b.Name, ref) {
				board, found = b, true
				break
			}
		}
		if !found {
			return models.Board{}, fmt.Errorf("%w: %s", models.ErrBoardNotFound, ref)
		}
	}

	if err := a.SelectBoard(board.ID); err != nil {
		return models.Board{}, err
	}
	return board, nil
}

// ResolveColumn finds a column by ID, case-insensitive title or 1-based
// position
func ResolveColumn(b models.Board, ref string) (models.Column, error) {
	for _, col := range b.Columns {
		if string(col.ID) == ref || strings.EqualFold(col.Title, ref) {
			return col, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(b.Columns) {
		return b.Columns[n-1], nil
	}
	return models.Column{}, fmt.Errorf("%w: %s", models.ErrColumnNotFound, ref)
}

// ResolveConversation finds a conversation by ID, or the active one when
// ref is empty
func ResolveConversation(a *app.App, ref string) (models.Conversation, error) {
	if ref == "" {
		if conv, ok := a.ActiveConversation(); ok {
			return conv, nil
		}
		convs := a.Conversations()
		if len(convs) == 0 {
			return models.Conversation{}, models.ErrConversationNotFound
		}
		return convs[len(convs)-1], nil
	}
	conv, ok := a.Conversation(types.ConversationID(ref))
	if !ok {
		return models.Conversation{}, fmt.Errorf("%w: %s", models.ErrConversationNotFound, ref)
	}
	return conv, nil
}

// ParsePosition parses a 1-based position argument into an index
func ParsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, UsageError(fmt.Errorf("position must be a positive integer, got %q", s))
	}
	return n - 1, nil
}
