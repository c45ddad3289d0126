package state

import "unicode/utf8"

// SearchState manages the sidebar search box.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendText appends typed text to the search query.
// Returns true if the text was added, false if query is at max length.
func (s *SearchState) AppendText(text string) bool {
	const maxQueryLength = 100

	if text == "" || utf8.RuneCountInString(s.Query)+utf8.RuneCountInString(text) > maxQueryLength {
		return false
	}
	s.Query += text
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if len(s.Query) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}
