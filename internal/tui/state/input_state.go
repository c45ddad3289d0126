package state

import (
	"strings"
	"unicode/utf8"
)

// maxInputLength bounds typed input, in runes
const maxInputLength = 500

// InputState manages simple text input state for prompts.
// This is used for cards, split text, renames and chat messages.
type InputState struct {
	// Buffer contains the text currently being typed
	Buffer string

	// Prompt is the text displayed to the user (e.g., "New card:")
	Prompt string

	// InitialBuffer stores the original buffer value for change detection (rename modes)
	InitialBuffer string
}

// NewInputState creates a new InputState with empty values.
func NewInputState() *InputState {
	return &InputState{}
}

// Start begins a prompt with an optional prefilled value
func (s *InputState) Start(prompt, initial string) {
	s.Prompt = prompt
	s.Buffer = initial
	s.InitialBuffer = initial
}

// Clear resets the buffer and prompt to empty strings.
func (s *InputState) Clear() {
	s.Buffer = ""
	s.Prompt = ""
	s.InitialBuffer = ""
}

// AppendText appends typed text to the buffer if within max length.
// Returns true if the text was added.
func (s *InputState) AppendText(text string) bool {
	if text == "" || utf8.RuneCountInString(s.Buffer)+utf8.RuneCountInString(text) > maxInputLength {
		return false
	}
	s.Buffer += text
	return true
}

// Backspace removes the last character from the input buffer.
// Returns true if a character was removed, false if buffer was already empty.
func (s *InputState) Backspace() bool {
	if len(s.Buffer) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Buffer)
	s.Buffer = s.Buffer[:len(s.Buffer)-size]
	return true
}

// IsEmpty returns true if the input buffer is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return strings.TrimSpace(s.Buffer) == ""
}

// TrimmedBuffer returns the input buffer with leading and trailing whitespace removed.
func (s *InputState) TrimmedBuffer() string {
	return strings.TrimSpace(s.Buffer)
}

// HasInputChanges returns true if the buffer differs from initial value.
func (s *InputState) HasInputChanges() bool {
	return strings.TrimSpace(s.Buffer) != strings.TrimSpace(s.InitialBuffer)
}
