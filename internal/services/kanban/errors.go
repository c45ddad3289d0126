package kanban

import "github.com/thenoetrevino/sage/internal/models"

// Editor errors
var (
	ErrNoBoard        = models.ErrNoActiveBoard
	ErrColumnNotFound = models.ErrColumnNotFound
	ErrTaskNotFound   = models.ErrTaskNotFound
	ErrEmptyContent   = models.ErrEmptyContent
)
