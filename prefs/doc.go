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

// Package prefs holds typed preference values that can be stored on disk and
// overridden from the command line.
//
// Values are registered with a Disk instance under a dotted key and the Disk
// is responsible for saving and loading them as a TOML file. Every type
// supports a pre and post hook, called around every change of value. The pre
// hook can veto a change by returning an error.
//
// Command line groups, created with PushCommandLineStack(), take precedence
// over the values stored on disk. A group is a string of key::value pairs
// separated by semi-colons. For example:
//
//	connection.address::ws://localhost:9002; memory.size::512
package prefs
