package conversation

import "github.com/thenoetrevino/sage/internal/models"

// Conversation-related errors
var (
	ErrConversationNotFound = models.ErrConversationNotFound
	ErrMessageNotFound      = models.ErrMessageNotFound
	ErrEmptyContent         = models.ErrEmptyContent
)
