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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags for the
// current mode are added before Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("WATCH", "REPLAY", "VERSION")
//	r, err := md.Parse()
//
// The first sub-mode is the default. After a successful Parse() the selected
// mode is returned by Mode(). A new set of flags for that mode is then
// started with NewMode() and parsed in the same way:
//
//	md.NewMode()
//	addr := md.AddString("addr", wsclient.DefaultAddress, "websocket address")
//	r, err = md.Parse()
//
// Non-flag arguments that remain after a Parse() are available through
// RemainingArgs() and GetArg().
//
// Sub-mode names are case insensitive. The Path() function returns every mode
// encountered so far, separated by a forward slash. The path is used as the
// banner of help messages, produced when the -help flag is given.
package modalflag
