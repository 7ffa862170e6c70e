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

// Package session is the event dispatcher. A Session owns the models that
// are reconstructed from the event stream of a virtual machine: the call
// stack, the value stack and the log. It also holds the memory image and the
// highlight coordinator so that a presentation layer has a single object to
// read from.
//
// Events are applied one at a time, in the order they are given, and only
// while the session is in the Connected state. A transition into Connected
// starts a new connection session: the call stack and value stack are
// emptied, the log and memory image are left as they are.
//
// Nothing that happens while applying an event stops the session. Malformed
// events are discarded, stack underflows and allocations outside the memory
// image are recorded as inconsistencies. In every case a diagnostic is logged
// and an error is returned for information.
//
// A Session is not safe for concurrent use. It is intended to be owned by
// the goroutine that renders it.
package session
