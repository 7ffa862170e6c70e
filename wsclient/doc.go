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

// Package wsclient is the websocket connection manager. It connects to the
// virtual machine, reads messages and re-establishes the connection when it
// is lost and auto reconnection is enabled.
//
// The Manager never touches the session models. Everything it learns is sent
// on the channel returned by Updates(), in the order in which it happened: a
// Connected state always precedes the messages received on that connection
// and a Disconnected state always follows them. The consumer of the channel
// is free to apply the updates to the session in the same goroutine that
// renders it.
//
// Messages read after a deliberate Disconnect() or Reconnect() are dropped
// and never appear on the channel.
package wsclient
