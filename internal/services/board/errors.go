package board

import "github.com/thenoetrevino/sage/internal/models"

// Board-related errors
var (
	ErrBoardNotFound = models.ErrBoardNotFound
	ErrNoActiveBoard = models.ErrNoActiveBoard
)
