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

// Package display renders the models of a session to a terminal. The Display
// type reads everything it needs through the View interface, which is
// satisfied by session.Session, and never changes the models. The only state
// it changes is the hovered allocation, which follows the selection cursor.
//
// In plain mode no styling is applied and the output is suitable for a
// non-interactive terminal or a log file. Otherwise styling is applied with
// the lipgloss package.
package display
