package models

import "github.com/thenoetrevino/sage/internal/types"

// Task is a single kanban card. A task is owned by exactly one column at a
// time and is never persisted on its own.
type Task struct {
	ID      types.TaskID `json:"id"`
	Content string       `json:"content"`
}
