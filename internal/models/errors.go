package models

import "errors"

// Domain errors shared by the state managers. None of them leave state
// changed: they report an operation that was a no-op.
var (
	// ErrBoardNotFound indicates an operation addressed a board that does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrColumnNotFound indicates an operation addressed a column that does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates a task index outside its column
	ErrTaskNotFound = errors.New("task not found")

	// ErrConversationNotFound indicates an unknown conversation id
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrMessageNotFound indicates an unknown message id
	ErrMessageNotFound = errors.New("message not found")

	// ErrEmptyContent indicates blank input that was ignored
	ErrEmptyContent = errors.New("content is empty")

	// ErrNoActiveBoard indicates an operation that needs an active board when there is none
	ErrNoActiveBoard = errors.New("no active board")
)

// IsIgnorable reports whether err is a missing-reference or blank-input
// error. The interactive shell drops these silently.
func IsIgnorable(err error) bool {
	return errors.Is(err, ErrBoardNotFound) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrConversationNotFound) ||
		errors.Is(err, ErrMessageNotFound) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrNoActiveBoard)
}

// IsNotFound reports whether err is a missing-reference error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBoardNotFound) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrConversationNotFound) ||
		errors.Is(err, ErrMessageNotFound) ||
		errors.Is(err, ErrNoActiveBoard)
}
