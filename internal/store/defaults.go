package store

import (
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

// DefaultBoards returns the two boards written on first start. Each inbox
// holds one starter task.
func DefaultBoards(ids types.IDGenerator) []models.Board {
	names := []string{"Board A", "Board B"}
	boards := make([]models.Board, 0, len(names))
	for _, name := range names {
		b := models.NewBoard(types.BoardID(ids.NewID()), name)
		b.Columns[b.Columns.Index(types.InboxColumn)].Tasks = []models.Task{
			{ID: types.TaskID(ids.NewID()), Content: "Task 1 for " + name},
		}
		boards = append(boards, b)
	}
	return boards
}
