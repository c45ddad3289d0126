package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/sage/internal/types"
)

// Column is a named, ordered bucket of tasks within a board
type Column struct {
	ID    types.ColumnID `json:"id"`
	Title string         `json:"title"`
	Tasks []Task         `json:"tasks"`
}

// NewColumn creates an empty column
func NewColumn(id types.ColumnID, title string) Column {
	return Column{ID: id, Title: title, Tasks: []Task{}}
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	c.Tasks = tasks
	return c
}

// Columns is the ordered set of columns of a board, keyed by column id.
//
// In memory it is a slice so insertion order is stable. On the wire it is a
// JSON object keyed by column id, written and read in slice order:
//
//	{"inbox": {"id": "inbox", "title": "Inbox", "tasks": []}, ...}
type Columns []Column

// Index returns the position of the column with the given id, or -1
func (cs Columns) Index(id types.ColumnID) int {
	for i := range cs {
		if cs[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the column with the given id
func (cs Columns) Get(id types.ColumnID) (Column, bool) {
	i := cs.Index(id)
	if i < 0 {
		return Column{}, false
	}
	return cs[i], true
}

// IDs returns the column ids in order
func (cs Columns) IDs() []types.ColumnID {
	ids := make([]types.ColumnID, len(cs))
	for i := range cs {
		ids[i] = cs[i].ID
	}
	return ids
}

// First returns the id of the first column by insertion order
func (cs Columns) First() (types.ColumnID, bool) {
	if len(cs) == 0 {
		return "", false
	}
	return cs[0].ID, true
}

// TaskCount returns the number of tasks across all columns
func (cs Columns) TaskCount() int {
	n := 0
	for i := range cs {
		n += len(cs[i].Tasks)
	}
	return n
}

// Clone returns a deep copy of the column set
func (cs Columns) Clone() Columns {
	if cs == nil {
		return nil
	}
	out := make(Columns, len(cs))
	for i := range cs {
		out[i] = cs[i].Clone()
	}
	return out
}

// MarshalJSON encodes the set as an object keyed by column id
func (cs Columns) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(col.ID))
		if err != nil {
			return nil, err
		}
		if col.Tasks == nil {
			col.Tasks = []Task{}
		}
		val, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by column id, keeping key order.
// A column whose id field is missing takes the id of its key. A repeated key
// replaces the earlier value in place.
func (cs *Columns) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*cs = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("columns: expected object, got %v", tok)
	}

	out := Columns{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("columns: expected string key, got %v", tok)
		}

		var col Column
		if err := dec.Decode(&col); err != nil {
			return fmt.Errorf("column %q: %w", key, err)
		}
		if col.ID == "" {
			col.ID = types.ColumnID(key)
		}
		if col.Tasks == nil {
			col.Tasks = []Task{}
		}

		if i := out.Index(col.ID); i >= 0 {
			out[i] = col
		} else {
			out = append(out, col)
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*cs = out
	return nil
}
