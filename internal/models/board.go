package models

import (
	"fmt"

	"github.com/thenoetrevino/sage/internal/types"
)

// Board is a named kanban workspace with an ordered set of columns
type Board struct {
	ID      types.BoardID `json:"id"`
	Name    string        `json:"name"`
	Columns Columns       `json:"columns"`
}

// DefaultColumns returns the four columns every new board starts with
func DefaultColumns() Columns {
	return Columns{
		NewColumn(types.InboxColumn, "Inbox"),
		NewColumn(types.TodoColumn, "To Do"),
		NewColumn(types.InProgressColumn, "In Progress"),
		NewColumn(types.DoneColumn, "Done"),
	}
}

// NewBoard creates a board with the default columns, all empty
func NewBoard(id types.BoardID, name string) Board {
	return Board{ID: id, Name: name, Columns: DefaultColumns()}
}

// NewBoardName returns the name given to the n-th board created by the user
func NewBoardName(n int) string {
	return fmt.Sprintf("New Board %d", n)
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	b.Columns = b.Columns.Clone()
	return b
}

// CloneBoards deep copies a board list
func CloneBoards(boards []Board) []Board {
	out := make([]Board, len(boards))
	for i := range boards {
		out[i] = boards[i].Clone()
	}
	return out
}
