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

// Package connection describes the state of the connection to the virtual
// machine and the policy deciding what should happen next. It has no
// knowledge of the transport. The wsclient package is the websocket
// implementation.
package connection

// State of the connection.
type State int

// List of valid State values.
const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	}
	return "Unknown"
}

// Action is a change to the connection that is wanted.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionConnect
	ActionDisconnect
)

func (a Action) String() string {
	switch a {
	case ActionConnect:
		return "connect"
	case ActionDisconnect:
		return "disconnect"
	}
	return "none"
}

// NextAction returns the action that should be taken for the connection
// state. A dropped connection is only re-established automatically if
// autoReconnect is true. A deliberate disconnection is never followed by an
// automatic connection.
func NextAction(state State, autoReconnect bool, deliberate bool) Action {
	if state == Disconnected && autoReconnect && !deliberate {
		return ActionConnect
	}
	return ActionNone
}
