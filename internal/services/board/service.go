package board

import (
	"log/slog"

	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

// Service owns the board list and the active board id
type Service interface {
	// Read operations
	Boards() []models.Board
	Board(id types.BoardID) (models.Board, bool)
	ActiveBoard() (models.Board, bool)
	ActiveID() types.BoardID

	// Write operations
	AddBoard() models.Board
	EditBoard(id types.BoardID, name string) error
	DeleteBoard(id types.BoardID) error
	UpdateBoard(board models.Board) error
	SelectBoard(id types.BoardID) error

	// Replace swaps in a freshly loaded board list. The active board is kept
	// if it still exists, otherwise the first board becomes active.
	Replace(boards []models.Board)
}

// service implements Service over an in-memory list
type service struct {
	boards []models.Board
	active types.BoardID
	ids    types.IDGenerator
}

// NewService creates a board service holding boards. The first board, if
// any, becomes active.
func NewService(boards []models.Board, ids types.IDGenerator) Service {
	if ids == nil {
		ids = types.UUIDGenerator{}
	}
	s := &service{ids: ids}
	s.Replace(boards)
	return s
}

// Boards returns a copy of all boards in order
func (s *service) Boards() []models.Board {
	return models.CloneBoards(s.boards)
}

// Board returns a copy of the board with id
func (s *service) Board(id types.BoardID) (models.Board, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Board{}, false
	}
	return s.boards[i].Clone(), true
}

// ActiveBoard returns a copy of the active board
func (s *service) ActiveBoard() (models.Board, bool) {
	if s.active == "" {
		return models.Board{}, false
	}
	return s.Board(s.active)
}

// ActiveID returns the active board id, empty when there is none
func (s *service) ActiveID() types.BoardID {
	return s.active
}

// AddBoard appends a board named after the new board count and makes it active
func (s *service) AddBoard() models.Board {
	b := models.NewBoard(types.BoardID(s.ids.NewID()), models.NewBoardName(len(s.boards)+1))
	s.boards = append(s.boards, b)
	s.active = b.ID
	slog.Debug("board created", "board_id", b.ID, "name", b.Name)
	return b.Clone()
}

// EditBoard renames a board
func (s *service) EditBoard(id types.BoardID, name string) error {
	i := s.index(id)
	if i < 0 {
		return ErrBoardNotFound
	}
	s.boards[i].Name = name
	return nil
}

// DeleteBoard removes a board. Deleting the active board makes the first
// remaining board active, or leaves none.
func (s *service) DeleteBoard(id types.BoardID) error {
	i := s.index(id)
	if i < 0 {
		return ErrBoardNotFound
	}
	s.boards = append(s.boards[:i], s.boards[i+1:]...)

	if s.active == id {
		s.active = ""
		if len(s.boards) > 0 {
			s.active = s.boards[0].ID
		}
	}
	slog.Debug("board deleted", "board_id", id, "active", s.active)
	return nil
}

// UpdateBoard replaces the board with the same id
func (s *service) UpdateBoard(board models.Board) error {
	i := s.index(board.ID)
	if i < 0 {
		return ErrBoardNotFound
	}
	s.boards[i] = board.Clone()
	return nil
}

// SelectBoard sets the active board
func (s *service) SelectBoard(id types.BoardID) error {
	if s.index(id) < 0 {
		return ErrBoardNotFound
	}
	s.active = id
	return nil
}

func (s *service) Replace(boards []models.Board) {
	s.boards = models.CloneBoards(boards)
	if s.index(s.active) >= 0 {
		return
	}
	s.active = ""
	if len(s.boards) > 0 {
		s.active = s.boards[0].ID
	}
}

func (s *service) index(id types.BoardID) int {
	if id == "" {
		return -1
	}
	for i := range s.boards {
		if s.boards[i].ID == id {
			return i
		}
	}
	return -1
}
