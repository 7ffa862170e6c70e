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

// Package vmlog is the output log of the virtual machine. Entries arrive as
// log events and are kept in arrival order. There is no limit to the number
// of entries.
//
// This is different to the logger package, which is the diagnostics log of
// the application itself.
package vmlog

import (
	"fmt"
	"io"
)

// Kind of log entry.
type Kind string

// List of valid Kind values.
const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Valid returns true if the kind is one of the listed kinds.
func (k Kind) Valid() bool {
	return k == KindInfo || k == KindError
}

// Label returns the text used to introduce an entry of this kind.
func (k Kind) Label() string {
	if k == KindError {
		return "Error"
	}
	return "Info"
}

// Entry is a single message from the virtual machine.
type Entry struct {
	Message string
	Kind    Kind
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s]: %s", e.Kind.Label(), e.Message)
}

// Sink is the list of log entries. The zero value is an empty log ready for
// use.
type Sink struct {
	entries []Entry
}

// Append adds an entry to the end of the log.
func (s *Sink) Append(e Entry) {
	s.entries = append(s.entries, e)
}

// Len returns the number of entries.
func (s *Sink) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the log in arrival order.
func (s *Sink) Entries() []Entry {
	c := make([]Entry, len(s.entries))
	copy(c, s.entries)
	return c
}

// Tail returns a copy of the last N entries.
func (s *Sink) Tail(number int) []Entry {
	if number > len(s.entries) {
		number = len(s.entries)
	}
	if number < 0 {
		number = 0
	}
	c := make([]Entry, number)
	copy(c, s.entries[len(s.entries)-number:])
	return c
}

// Write the log to io.Writer, one entry per line.
func (s *Sink) Write(w io.Writer) {
	for _, e := range s.entries {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}
