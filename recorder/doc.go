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

// Package recorder writes the updates received from the connection manager to
// a tape file and plays them back into a session.
//
// A tape is a stream of CBOR items. The first item is the Header and every
// following item is a Frame. Frames are written as they arrive so a tape is
// usable even if the program did not exit cleanly. A truncated final frame is
// ignored on playback.
//
// Because the tape holds connection state changes as well as messages, a
// replayed session goes through the same resets as the live session did.
package recorder
