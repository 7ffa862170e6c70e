// This file is part of Stackscope.
//
// Stackscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stackscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stackscope.  If not, see <https://www.gnu.org/licenses/>.

// Package callstack models the call stack of the virtual machine as reported
// by the push and pop events of the event stream. The most recent call is the
// last entry.
package callstack

import (
	"fmt"
	"io"
	"strings"

	"github.com/stackscope/stackscope/curated"
)

// UnderflowError is returned by Pop() when the stack is empty.
const UnderflowError = "callstack: pop on empty call stack"

// Entry is a single function call.
type Entry struct {
	Function string
	File     string
	Line     int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %d", e.Function, e.File, e.Line)
}

// Stack maintains the function calls in the order in which they happened.
// The zero value is an empty stack ready for use.
type Stack struct {
	stack []Entry
}

// Push adds a new call to the top of the stack.
func (s *Stack) Push(e Entry) {
	s.stack = append(s.stack, e)
}

// Pop removes the most recent call. Popping an empty stack leaves the stack
// empty and returns UnderflowError.
func (s *Stack) Pop() error {
	if len(s.stack) == 0 {
		return curated.Errorf(UnderflowError)
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Top returns the most recent call. The boolean is false if the stack is
// empty.
func (s *Stack) Top() (Entry, bool) {
	if len(s.stack) == 0 {
		return Entry{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of calls in the stack.
func (s *Stack) Len() int {
	return len(s.stack)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.stack = s.stack[:0]
}

// Entries returns a copy of the stack. The first entry is the outermost call.
func (s *Stack) Entries() []Entry {
	c := make([]Entry, len(s.stack))
	copy(c, s.stack)
	return c
}

// Write the call stack to io.Writer, one call per line, outermost first.
func (s *Stack) Write(w io.Writer) {
	for _, e := range s.stack {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}

func (s *Stack) String() string {
	b := &strings.Builder{}
	s.Write(b)
	return b.String()
}
