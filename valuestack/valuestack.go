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

package valuestack

import (
	"github.com/stackscope/stackscope/curated"
)

// UnderflowError is returned by PopFrame() when there is no open frame.
const UnderflowError = "valuestack: pop frame with no open frame (%d entries discarded)"

// Stack is the value stack. The zero value is an empty stack ready for use.
type Stack struct {
	entries []Entry
}

// PushFrame opens a new scope.
func (s *Stack) PushFrame(initialSize int) {
	s.entries = append(s.entries, Frame{InitialSize: initialSize})
}

// Allocate adds an allocation to the innermost scope.
func (s *Stack) Allocate(a Allocation) {
	s.entries = append(s.entries, a)
}

// PopFrame closes the innermost scope. The most recent Frame and every entry
// after it are removed.
//
// If there is no Frame in the stack then all entries are removed and
// UnderflowError is returned.
func (s *Stack) PopFrame() error {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if _, ok := s.entries[i].(Frame); ok {
			s.truncate(i)
			return nil
		}
	}

	n := len(s.entries)
	s.truncate(0)
	return curated.Errorf(UnderflowError, n)
}

// truncate the stack to length n. entries beyond n are cleared so that they
// can be collected.
func (s *Stack) truncate(n int) {
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.truncate(0)
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	var d int
	for _, e := range s.entries {
		if _, ok := e.(Frame); ok {
			d++
		}
	}
	return d
}

// Entries returns a copy of the stack. The first entry is the bottom of the
// stack.
func (s *Stack) Entries() []Entry {
	c := make([]Entry, len(s.entries))
	copy(c, s.entries)
	return c
}

// Allocations returns a copy of only the allocations in the stack, in stack
// order.
func (s *Stack) Allocations() []Allocation {
	var c []Allocation
	for _, e := range s.entries {
		if a, ok := e.(Allocation); ok {
			c = append(c, a)
		}
	}
	return c
}
