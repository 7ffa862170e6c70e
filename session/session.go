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

package session

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/stackscope/stackscope/callstack"
	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/event"
	"github.com/stackscope/stackscope/highlight"
	"github.com/stackscope/stackscope/logger"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/valuestack"
	"github.com/stackscope/stackscope/vmlog"
)

// Sentinel error patterns.
const (
	NotConnected         = "session: event ignored while %v"
	AllocationOutOfRange = "session: allocation %v is outside of memory image of length %d"
	UnhandledEvent       = "session: unhandled event type %T"
)

// number of diagnostics kept by the session.
const maxDiagnostics = 64

// Stats counts what has happened to the events given to the session.
type Stats struct {
	// number of times the session has entered the Connected state
	Connections int

	// events that changed a model
	Applied int

	// events that arrived when the session was not connected
	Ignored int

	// events that could not be decoded or classified
	Discarded int

	// events that were applied but which revealed an inconsistency between the
	// event stream and the models
	Inconsistencies int
}

// Session is the event dispatcher and owner of the models.
type Session struct {
	state connection.State

	mem       *memimage.Image
	calls     callstack.Stack
	values    valuestack.Stack
	log       vmlog.Sink
	highlight highlight.Coordinator

	stats       Stats
	diagnostics *logger.Logger
}

// NewSession is the preferred method of initialisation for the Session type.
// The session starts in the Disconnected state.
func NewSession(mem *memimage.Image) *Session {
	return &Session{
		state:       connection.Disconnected,
		mem:         mem,
		diagnostics: logger.NewLogger(maxDiagnostics),
	}
}

// diagnostic is added to both the session diagnostics and the central log.
func (s *Session) diagnostic(tag string, detail any) {
	s.diagnostics.Log(logger.Allow, tag, detail)
	logger.Log(logger.Allow, tag, detail)
}

// OnConnectionStateChanged must be called whenever the connection changes
// state. Entering the Connected state resets the call stack and value stack.
func (s *Session) OnConnectionStateChanged(state connection.State) {
	if state == s.state {
		return
	}
	s.state = state

	if state == connection.Connected {
		s.calls.Reset()
		s.values.Reset()
		s.highlight.Unhover()
		s.stats.Connections++
	}

	s.diagnostic("session", state)
}

// State returns the most recent connection state.
func (s *Session) State() connection.State {
	return s.state
}

// ApplyRaw decodes a wire message and applies it.
func (s *Session) ApplyRaw(b []byte) error {
	if s.state != connection.Connected {
		s.stats.Ignored++
		return curated.Errorf(NotConnected, s.state)
	}

	msg, err := event.Decode(b)
	if err != nil {
		s.stats.Discarded++
		s.diagnostic("event", err)
		return err
	}

	return s.ApplyEvent(msg)
}

// ApplyEvent classifies the decoded message and applies it to the matching
// model. The returned error is for information only. The session is always
// ready for the next event.
func (s *Session) ApplyEvent(msg event.Message) error {
	if s.state != connection.Connected {
		s.stats.Ignored++
		return curated.Errorf(NotConnected, s.state)
	}

	ev, err := event.Classify(msg)
	if err != nil {
		s.stats.Discarded++
		s.diagnostic("event", err)
		return err
	}

	return s.apply(ev)
}

// Apply an already classified event.
func (s *Session) Apply(ev event.Event) error {
	if s.state != connection.Connected {
		s.stats.Ignored++
		return curated.Errorf(NotConnected, s.state)
	}
	return s.apply(ev)
}

func (s *Session) apply(ev event.Event) error {
	var err error

	switch ev := ev.(type) {
	case event.CallPush:
		s.calls.Push(ev.Entry)
	case event.CallPop:
		err = s.calls.Pop()
	case event.FramePush:
		s.values.PushFrame(ev.InitialSize)
	case event.FramePop:
		err = s.values.PopFrame()
	case event.Allocate:
		s.values.Allocate(ev.Allocation)
		if !s.mem.InBounds(ev.Allocation.Address, ev.Allocation.Size) {
			err = curated.Errorf(AllocationOutOfRange, ev.Allocation, s.mem.Len())
		}
	case event.LogAppend:
		s.log.Append(ev.Entry)
	default:
		err = curated.Errorf(UnhandledEvent, ev)
		s.stats.Discarded++
		s.diagnostic("session", err)
		return err
	}

	s.stats.Applied++

	if err != nil {
		s.stats.Inconsistencies++
		s.diagnostic("session", err)
	}

	return err
}

// Stats returns a copy of the session statistics.
func (s *Session) Stats() Stats {
	return s.stats
}

// CallStack returns a copy of the call stack. The most recent call is last.
func (s *Session) CallStack() []callstack.Entry {
	return s.calls.Entries()
}

// ValueStack returns a copy of the value stack. The top of the stack is last.
func (s *Session) ValueStack() []valuestack.Entry {
	return s.values.Entries()
}

// Allocations returns a copy of the allocations in the value stack.
func (s *Session) Allocations() []valuestack.Allocation {
	return s.values.Allocations()
}

// LogEntries returns a copy of the log in arrival order.
func (s *Session) LogEntries() []vmlog.Entry {
	return s.log.Entries()
}

// Memory returns the memory image. The image should not be modified while the
// session is being used.
func (s *Session) Memory() *memimage.Image {
	return s.mem
}

// MemorySlice returns a copy of part of the memory image.
func (s *Session) MemorySlice(offset int, length int) ([]int8, error) {
	return s.mem.Slice(offset, length)
}

// Hover the allocation, making its memory the highlighted range.
func (s *Session) Hover(a valuestack.Allocation) {
	s.highlight.Hover(a)
}

// Unhover clears the highlighted range.
func (s *Session) Unhover() {
	s.highlight.Unhover()
}

// HighlightRange returns the highlighted range of memory, if any.
func (s *Session) HighlightRange() (highlight.Range, bool) {
	return s.highlight.Range()
}

// Diagnostics writes the most recent diagnostics of the session.
func (s *Session) Diagnostics(w io.Writer, number int) {
	s.diagnostics.Tail(w, number)
}

// LastDiagnostic returns the most recent diagnostic. The boolean is false if
// there have been no diagnostics.
func (s *Session) LastDiagnostic() (logger.Entry, bool) {
	return s.diagnostics.Last()
}

// graph is the structure given to memviz.
type graph struct {
	State      string
	Stats      Stats
	CallStack  []callstack.Entry
	ValueStack []valuestack.Entry
	Log        []vmlog.Entry
}

// WriteGraph writes the current models to w in graphviz dot format.
func (s *Session) WriteGraph(w io.Writer) {
	g := &graph{
		State:      s.state.String(),
		Stats:      s.stats,
		CallStack:  s.calls.Entries(),
		ValueStack: s.values.Entries(),
		Log:        s.log.Entries(),
	}
	memviz.Map(w, g)
}
