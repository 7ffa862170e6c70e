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

// Package event defines the events sent by the virtual machine and the
// functions to decode and classify them.
//
// Every websocket message is a single JSON object:
//
//	{ "type": "callstack", "action": "push", "data": { "functionName": "main", "file": "main.c", "line": 3 } }
//	{ "type": "callstack", "action": "pop" }
//	{ "type": "stack", "action": "pushFrame", "data": { "initialSize": 0 } }
//	{ "type": "stack", "action": "popFrame" }
//	{ "type": "stack", "action": "allocate", "data": { "name": "x", "type": "Int32", "size": 4, "address": 0 } }
//	{ "type": "log", "data": { "message": "hello", "kind": "info" } }
//
// Decode() turns the wire bytes into a Message. The Message is the decoded
// but unvalidated form of the event. Classify() validates the shape of a
// Message and returns one of the Event variants: CallPush, CallPop,
// FramePush, FramePop, Allocate or LogAppend. The Event interface is sealed
// so that a type switch over the variants is complete.
//
// A Message that cannot be classified results in a curated error. The
// patterns are listed as constants in this package. None of the errors
// indicate a problem with the stream itself and the next message should be
// processed as normal.
package event
