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

// Package valuestack models the logical value stack of the virtual machine.
// The stack is a sequence of entries, each of which is either a Frame or an
// Allocation. A Frame marks the start of a lexical scope. An Allocation is a
// typed value, named or anonymous, that occupies a range of the memory image.
//
// The stack grows with PushFrame() and Allocate(). PopFrame() closes the
// innermost open scope by discarding the most recent Frame and everything
// that was pushed after it:
//
//	Frame(0) a Frame(4) b c       -> PopFrame() ->    Frame(0) a
//
// Entries belonging to an outer scope are never touched by PopFrame(). If
// there is no open scope then the stack is emptied and UnderflowError is
// returned. The error is informational and the stack remains usable.
package valuestack
