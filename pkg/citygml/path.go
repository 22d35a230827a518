package citygml

import "strings"

// pathStack tracks the stack of (namespace-stripped) local element names
// the decoder has descended through, plus a parallel per-element
// character-data buffer (spec.md §4.4 "Path stack"). Character data is
// accumulated into the buffer for whichever element is currently on top;
// it is available (trimmed) to the end-element handler right before the
// frame is popped.
type pathStack struct {
	names []string
	chars []strings.Builder
}

// push descends into a new element frame.
func (s *pathStack) push(local string) {
	s.names = append(s.names, local)
	s.chars = append(s.chars, strings.Builder{})
}

// pop removes the top frame and returns its trimmed character data.
func (s *pathStack) pop() string {
	n := len(s.names) - 1
	text := strings.TrimSpace(s.chars[n].String())
	s.names = s.names[:n]
	s.chars = s.chars[:n]
	return text
}

// top returns the current element's local name, or "" if the stack is
// empty.
func (s *pathStack) top() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[len(s.names)-1]
}

// depth returns the current stack depth (1 for the document element).
func (s *pathStack) depth() int {
	return len(s.names)
}

// addChars appends character data to the current (top) element's buffer.
func (s *pathStack) addChars(text string) {
	if len(s.chars) == 0 {
		return
	}
	s.chars[len(s.chars)-1].WriteString(text)
}

// peekText returns the top element's accumulated (untrimmed) character
// data without popping — used by start-tag handlers that need to inspect
// buffered text from an enclosing element (none currently do, kept for
// symmetry with pop).
func (s *pathStack) peekText() string {
	if len(s.chars) == 0 {
		return ""
	}
	return s.chars[len(s.chars)-1].String()
}
