// Package kanban edits the columns and tasks of a single board.
package kanban

import (
	"log/slog"
	"strings"

	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

// NewColumnTitle is the title given to columns created by AddColumn
const NewColumnTitle = "New Column"

// BoardUpdater receives the full replacement board after every edit
type BoardUpdater interface {
	UpdateBoard(board models.Board) error
}

// Editor holds a working copy of one board. Every successful mutation is
// pushed to the updater as a whole board.
type Editor struct {
	board    models.Board
	loaded   bool
	selected types.ColumnID
	updater  BoardUpdater
	ids      types.IDGenerator
}

// NewEditor creates an editor with no board loaded
func NewEditor(updater BoardUpdater, ids types.IDGenerator) *Editor {
	if ids == nil {
		ids = types.UUIDGenerator{}
	}
	return &Editor{updater: updater, ids: ids}
}

// Sync loads board into the editor. Switching to a different board resets
// the selected column to the board's first column; re-syncing the same
// board keeps the selection while that column exists.
func (e *Editor) Sync(board models.Board) {
	switched := !e.loaded || e.board.ID != board.ID
	e.board = board.Clone()
	e.loaded = true

	if !switched && e.board.Columns.Index(e.selected) >= 0 {
		return
	}
	e.selected, _ = e.board.Columns.First()
}

// Clear unloads the board
func (e *Editor) Clear() {
	e.board = models.Board{}
	e.loaded = false
	e.selected = ""
}

// Board returns a copy of the loaded board
func (e *Editor) Board() (models.Board, bool) {
	if !e.loaded {
		return models.Board{}, false
	}
	return e.board.Clone(), true
}

// SelectedColumn returns the column targeted by AddCard from the shell
func (e *Editor) SelectedColumn() types.ColumnID {
	return e.selected
}

// SelectColumn changes the selected column
func (e *Editor) SelectColumn(id types.ColumnID) error {
	if !e.loaded {
		return ErrNoBoard
	}
	if e.board.Columns.Index(id) < 0 {
		return ErrColumnNotFound
	}
	e.selected = id
	return nil
}

// AddCard appends a task with the trimmed content to column
func (e *Editor) AddCard(content string, column types.ColumnID) (models.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Task{}, ErrEmptyContent
	}
	next, ci, err := e.edit(column)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{ID: types.TaskID(e.ids.NewID()), Content: content}
	next.Columns[ci].Tasks = append(next.Columns[ci].Tasks, task)
	if err := e.commit(next); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// MoveCard removes the task at srcIndex of srcCol and inserts it at dstIndex
// of dstCol. The destination index is clamped after removal. Moving a task
// onto its own position changes nothing.
func (e *Editor) MoveCard(srcCol types.ColumnID, srcIndex int, dstCol types.ColumnID, dstIndex int) error {
	next, si, err := e.edit(srcCol)
	if err != nil {
		return err
	}
	di := next.Columns.Index(dstCol)
	if di < 0 {
		return ErrColumnNotFound
	}
	src := next.Columns[si].Tasks
	if srcIndex < 0 || srcIndex >= len(src) {
		return ErrTaskNotFound
	}
	if srcCol == dstCol && srcIndex == dstIndex {
		return nil
	}

	task := src[srcIndex]
	next.Columns[si].Tasks = append(src[:srcIndex], src[srcIndex+1:]...)

	dst := next.Columns[di].Tasks
	dstIndex = max(0, min(dstIndex, len(dst)))
	dst = append(dst, models.Task{})
	copy(dst[dstIndex+1:], dst[dstIndex:])
	dst[dstIndex] = task
	next.Columns[di].Tasks = dst

	slog.Debug("card moved", "board_id", next.ID, "task_id", task.ID, "from", srcCol, "to", dstCol, "index", dstIndex)
	return e.commit(next)
}

// AddColumn appends an empty column with a fresh id
func (e *Editor) AddColumn() (models.Column, error) {
	if !e.loaded {
		return models.Column{}, ErrNoBoard
	}
	next := e.board.Clone()
	col := models.NewColumn(types.ColumnID(e.ids.NewID()), NewColumnTitle)
	next.Columns = append(next.Columns, col)
	if err := e.commit(next); err != nil {
		return models.Column{}, err
	}
	return col, nil
}

// EditColumnTitle replaces a column title. Empty titles are allowed.
func (e *Editor) EditColumnTitle(column types.ColumnID, title string) error {
	next, ci, err := e.edit(column)
	if err != nil {
		return err
	}
	next.Columns[ci].Title = title
	return e.commit(next)
}

// SplitTextToCards appends one task per sentence of text to column. Text
// with no sentence content adds nothing and is not an error.
func (e *Editor) SplitTextToCards(text string, column types.ColumnID) ([]models.Task, error) {
	next, ci, err := e.edit(column)
	if err != nil {
		return nil, err
	}
	parts := SplitText(text)
	if len(parts) == 0 {
		return []models.Task{}, nil
	}

	tasks := make([]models.Task, len(parts))
	for i, p := range parts {
		tasks[i] = models.Task{ID: types.TaskID(e.ids.NewID()), Content: p}
	}
	next.Columns[ci].Tasks = append(next.Columns[ci].Tasks, tasks...)
	if err := e.commit(next); err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteCard removes the task at index of column
func (e *Editor) DeleteCard(column types.ColumnID, index int) error {
	next, ci, err := e.edit(column)
	if err != nil {
		return err
	}
	tasks := next.Columns[ci].Tasks
	if index < 0 || index >= len(tasks) {
		return ErrTaskNotFound
	}
	next.Columns[ci].Tasks = append(tasks[:index], tasks[index+1:]...)
	return e.commit(next)
}

// edit returns a working copy of the board and the index of column
func (e *Editor) edit(column types.ColumnID) (models.Board, int, error) {
	if !e.loaded {
		return models.Board{}, -1, ErrNoBoard
	}
	ci := e.board.Columns.Index(column)
	if ci < 0 {
		return models.Board{}, -1, ErrColumnNotFound
	}
	return e.board.Clone(), ci, nil
}

func (e *Editor) commit(next models.Board) error {
	if e.updater != nil {
		if err := e.updater.UpdateBoard(next.Clone()); err != nil {
			return err
		}
	}
	e.board = next
	return nil
}
