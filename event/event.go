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

package event

import (
	"github.com/stackscope/stackscope/callstack"
	"github.com/stackscope/stackscope/valuestack"
	"github.com/stackscope/stackscope/vmlog"
)

// Type is the category of an event.
type Type string

// List of event types.
const (
	TypeCallstack Type = "callstack"
	TypeStack     Type = "stack"
	TypeLog       Type = "log"
)

// List of event actions. The log type has no actions.
const (
	ActionPush      = "push"
	ActionPop       = "pop"
	ActionPushFrame = "pushFrame"
	ActionPopFrame  = "popFrame"
	ActionAllocate  = "allocate"
)

// Event is implemented by each of the event variants.
type Event interface {
	// Type returns the category of the event
	Type() Type

	// Message returns the event in the form of a Message
	Message() Message

	event()
}

// CallPush is a new function call.
type CallPush struct {
	Entry callstack.Entry
}

// CallPop is the end of the most recent function call.
type CallPop struct{}

// FramePush is the start of a lexical scope.
type FramePush struct {
	InitialSize int
}

// FramePop is the end of the innermost lexical scope.
type FramePop struct{}

// Allocate is a new value in the innermost lexical scope.
type Allocate struct {
	Allocation valuestack.Allocation
}

// LogAppend is a line of output from the virtual machine.
type LogAppend struct {
	Entry vmlog.Entry
}

func (CallPush) event()  {}
func (CallPop) event()   {}
func (FramePush) event() {}
func (FramePop) event()  {}
func (Allocate) event()  {}
func (LogAppend) event() {}

func (CallPush) Type() Type  { return TypeCallstack }
func (CallPop) Type() Type   { return TypeCallstack }
func (FramePush) Type() Type { return TypeStack }
func (FramePop) Type() Type  { return TypeStack }
func (Allocate) Type() Type  { return TypeStack }
func (LogAppend) Type() Type { return TypeLog }
