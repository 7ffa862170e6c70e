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
	"github.com/goccy/go-json"

	"github.com/stackscope/stackscope/callstack"
	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/valuestack"
	"github.com/stackscope/stackscope/vmlog"
)

// Sentinel error patterns.
const (
	MalformedMessage = "event: malformed message: %v"
	MissingType      = "event: message has no type"
	UnknownType      = "event: unknown type %q"
	MissingAction    = "event: %s message has no action"
	UnknownAction    = "event: unknown %s action %q"
	MissingData      = "event: %s %s message has no data"
	MalformedData    = "event: %s %s message has malformed data: %v"
	InvalidField     = "event: %s %s message has invalid %s field: %v"
)

// Message is a decoded event object. The Data field is left undecoded until
// the message is classified.
type Message struct {
	Type   Type            `json:"type"`
	Action string          `json:"action,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Decode a wire message. Only the outer object is decoded. A successful
// decode does not mean that the message is a valid event.
func Decode(b []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(b, &msg); err != nil {
		return Message{}, curated.Errorf(MalformedMessage, err)
	}
	return msg, nil
}

// Encode an event as a wire message.
func Encode(ev Event) ([]byte, error) {
	return json.Marshal(ev.Message())
}

// wire forms of the data field. pointer fields are required fields so that a
// missing field can be distinguished from a zero value.
type callPushData struct {
	FunctionName *string `json:"functionName"`
	File         string  `json:"file"`
	Line         int     `json:"line"`
}

type framePushData struct {
	InitialSize *int `json:"initialSize"`
}

type allocateData struct {
	Name    *string `json:"name,omitempty"`
	Type    *string `json:"type"`
	Size    *int    `json:"size"`
	Address *int    `json:"address"`
}

type logData struct {
	Message *string `json:"message"`
	Kind    string  `json:"kind,omitempty"`
}

// Classify validates the message and returns the matching event variant.
func Classify(msg Message) (Event, error) {
	switch msg.Type {
	case "":
		return nil, curated.Errorf(MissingType)
	case TypeCallstack:
		return classifyCallstack(msg)
	case TypeStack:
		return classifyStack(msg)
	case TypeLog:
		return classifyLog(msg)
	}
	return nil, curated.Errorf(UnknownType, msg.Type)
}

// hasData returns false if the data field is absent or is JSON null.
func hasData(msg Message) bool {
	return len(msg.Data) > 0 && string(msg.Data) != "null"
}

func decodeData(msg Message, v any) error {
	if !hasData(msg) {
		return curated.Errorf(MissingData, msg.Type, msg.Action)
	}
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return curated.Errorf(MalformedData, msg.Type, msg.Action, err)
	}
	return nil
}

func invalid(msg Message, field string, value any) error {
	return curated.Errorf(InvalidField, msg.Type, msg.Action, field, value)
}

func classifyCallstack(msg Message) (Event, error) {
	switch msg.Action {
	case "":
		return nil, curated.Errorf(MissingAction, msg.Type)
	case ActionPush:
		var d callPushData
		if err := decodeData(msg, &d); err != nil {
			return nil, err
		}
		if d.FunctionName == nil {
			return nil, invalid(msg, "functionName", "missing")
		}
		if d.Line < 0 {
			return nil, invalid(msg, "line", d.Line)
		}
		return CallPush{Entry: callstack.Entry{Function: *d.FunctionName, File: d.File, Line: d.Line}}, nil
	case ActionPop:
		return CallPop{}, nil
	}
	return nil, curated.Errorf(UnknownAction, msg.Type, msg.Action)
}

func classifyStack(msg Message) (Event, error) {
	switch msg.Action {
	case "":
		return nil, curated.Errorf(MissingAction, msg.Type)
	case ActionPushFrame:
		var d framePushData
		if err := decodeData(msg, &d); err != nil {
			return nil, err
		}
		if d.InitialSize == nil || *d.InitialSize < 0 {
			return nil, invalid(msg, "initialSize", intField(d.InitialSize))
		}
		return FramePush{InitialSize: *d.InitialSize}, nil
	case ActionPopFrame:
		return FramePop{}, nil
	case ActionAllocate:
		var d allocateData
		if err := decodeData(msg, &d); err != nil {
			return nil, err
		}
		if d.Type == nil || *d.Type == "" {
			return nil, invalid(msg, "type", "missing")
		}
		if d.Size == nil || *d.Size <= 0 {
			return nil, invalid(msg, "size", intField(d.Size))
		}
		if d.Address == nil || *d.Address < 0 {
			return nil, invalid(msg, "address", intField(d.Address))
		}
		a := valuestack.Allocation{
			Type:    valuestack.Type(*d.Type),
			Size:    *d.Size,
			Address: *d.Address,
		}
		if d.Name != nil {
			a.Name = *d.Name
		}
		return Allocate{Allocation: a}, nil
	}
	return nil, curated.Errorf(UnknownAction, msg.Type, msg.Action)
}

func classifyLog(msg Message) (Event, error) {
	var d logData
	if err := decodeData(msg, &d); err != nil {
		return nil, err
	}
	if d.Message == nil {
		return nil, invalid(msg, "message", "missing")
	}

	// a missing kind is treated as an info message
	k := vmlog.KindInfo
	if d.Kind != "" {
		k = vmlog.Kind(d.Kind)
		if !k.Valid() {
			return nil, invalid(msg, "kind", d.Kind)
		}
	}

	return LogAppend{Entry: vmlog.Entry{Message: *d.Message, Kind: k}}, nil
}

func intField(v *int) any {
	if v == nil {
		return "missing"
	}
	return *v
}

func rawData(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

func (ev CallPush) Message() Message {
	fn := ev.Entry.Function
	return Message{
		Type:   TypeCallstack,
		Action: ActionPush,
		Data:   rawData(callPushData{FunctionName: &fn, File: ev.Entry.File, Line: ev.Entry.Line}),
	}
}

func (ev CallPop) Message() Message {
	return Message{Type: TypeCallstack, Action: ActionPop}
}

func (ev FramePush) Message() Message {
	sz := ev.InitialSize
	return Message{
		Type:   TypeStack,
		Action: ActionPushFrame,
		Data:   rawData(framePushData{InitialSize: &sz}),
	}
}

func (ev FramePop) Message() Message {
	return Message{Type: TypeStack, Action: ActionPopFrame}
}

func (ev Allocate) Message() Message {
	typ := string(ev.Allocation.Type)
	sz := ev.Allocation.Size
	addr := ev.Allocation.Address
	d := allocateData{Type: &typ, Size: &sz, Address: &addr}
	if !ev.Allocation.Anonymous() {
		name := ev.Allocation.Name
		d.Name = &name
	}
	return Message{
		Type:   TypeStack,
		Action: ActionAllocate,
		Data:   rawData(d),
	}
}

func (ev LogAppend) Message() Message {
	msg := ev.Entry.Message
	return Message{
		Type: TypeLog,
		Data: rawData(logData{Message: &msg, Kind: string(ev.Entry.Kind)}),
	}
}
