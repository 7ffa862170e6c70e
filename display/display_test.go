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

package display_test

import (
	"strings"
	"testing"

	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/display"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/session"
	"github.com/stackscope/stackscope/terminal/easyterm"
	"github.com/stackscope/stackscope/test"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()

	mem, err := memimage.NewImage(48)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Load(40, []int8{65}))

	s := session.NewSession(mem)
	s.OnConnectionStateChanged(connection.Connected)

	for _, m := range []string{
		`{"type":"callstack","action":"push","data":{"functionName":"main","file":"main.c","line":3}}`,
		`{"type":"stack","action":"pushFrame","data":{"initialSize":0}}`,
		`{"type":"stack","action":"allocate","data":{"name":"x","type":"Int32","size":4,"address":0}}`,
		`{"type":"stack","action":"allocate","data":{"name":"c","type":"Char","size":1,"address":40}}`,
		`{"type":"log","data":{"message":"started","kind":"info"}}`,
		`{"type":"log","data":{"message":"bad thing","kind":"error"}}`,
	} {
		test.DemandSuccess(t, s.ApplyRaw([]byte(m)))
	}

	return s
}

func TestRender(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)
	d.SetConnectionInfo("ws://localhost:9002", true)

	w := &test.Writer{}
	test.DemandSuccess(t, d.Render(w))
	out := w.String()

	for _, expected := range []string{
		"Connected | ws://localhost:9002 (auto-reconnect on) | events 6",
		"main main.c 3",
		"  Stack Frame (initial size: 0)",
		"  x Int32 (4 b) 0 Value: 0",
		"  c Char (1 b) 40 Value: 'A'",
		"[Info]: started",
		"[Error]: bad thing",
		"0020:    0     0     0     0     0     0     0     0    65     0",
	} {
		test.ExpectSuccess(t, strings.Contains(out, expected), expected)
	}

	test.ExpectFailure(t, strings.Contains(out, "INCONSISTENT"))
}

func TestSelection(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)

	_, ok := d.Selected()
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'j'}), display.CommandNone)
	a, ok := d.Selected()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Name, "x")

	r, ok := s.HighlightRange()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r.Offset, 0)
	test.ExpectEquality(t, r.Length, 4)

	out := d.String()
	test.ExpectSuccess(t, strings.Contains(out, "> x Int32 (4 b) 0 Value: 0"))
	test.ExpectSuccess(t, strings.Contains(out, "0000:[   0][   0][   0][   0]    0 "))

	// cursor wraps
	d.HandleKey(easyterm.Key{Special: easyterm.Down})
	d.HandleKey(easyterm.Key{Special: easyterm.Down})
	a, _ = d.Selected()
	test.ExpectEquality(t, a.Name, "x")
	d.HandleKey(easyterm.Key{Rune: 'k'})
	a, _ = d.Selected()
	test.ExpectEquality(t, a.Name, "c")

	d.HandleKey(easyterm.Key{Rune: 'u'})
	_, ok = d.Selected()
	test.ExpectFailure(t, ok)
	_, ok = s.HighlightRange()
	test.ExpectFailure(t, ok)
}

func TestSelectionFollowsModels(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)
	d.Select(-1)

	a, ok := d.Selected()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Name, "c")

	// closing the frame removes every allocation
	test.DemandSuccess(t, s.ApplyRaw([]byte(`{"type":"stack","action":"popFrame"}`)))
	_, ok = d.Selected()
	test.ExpectFailure(t, ok)
	_, ok = s.HighlightRange()
	test.ExpectFailure(t, ok)
}

func TestSelectionFollowsReplacement(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)
	d.Select(1)

	a, ok := d.Selected()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Name, "x")

	// a new frame with one allocation puts a different allocation under the
	// cursor without changing the number of allocations
	for _, m := range []string{
		`{"type":"stack","action":"popFrame"}`,
		`{"type":"stack","action":"pushFrame","data":{"initialSize":0}}`,
		`{"type":"stack","action":"allocate","data":{"name":"y","type":"Char","size":1,"address":40}}`,
		`{"type":"stack","action":"allocate","data":{"name":"z","type":"Int8","size":1,"address":41}}`,
	} {
		test.DemandSuccess(t, s.ApplyRaw([]byte(m)))
	}

	a, ok = d.Selected()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Name, "y")

	r, ok := s.HighlightRange()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r.Offset, 40)
	test.ExpectEquality(t, r.Length, 1)
}

func TestInconsistentStatus(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)

	test.DemandSuccess(t, s.ApplyRaw([]byte(`{"type":"stack","action":"popFrame"}`)))
	test.DemandFailure(t, s.ApplyRaw([]byte(`{"type":"stack","action":"popFrame"}`)))

	out := d.String()
	test.ExpectSuccess(t, strings.Contains(out, "INCONSISTENT (1)"))
	test.ExpectSuccess(t, strings.Contains(out, "valuestack: pop frame with no open frame"))
}

func TestCommands(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, true)

	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'q'}), display.CommandQuit)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Special: easyterm.Interrupt}), display.CommandQuit)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'r'}), display.CommandReconnect)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'd'}), display.CommandDisconnect)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'a'}), display.CommandToggleAutoReconnect)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'g'}), display.CommandWriteGraph)
	test.ExpectEquality(t, d.HandleKey(easyterm.Key{Rune: 'z'}), display.CommandNone)
}

func TestStyledRender(t *testing.T) {
	s := newSession(t)
	d := display.NewDisplay(s, false)

	// styling must not lose any of the content
	out := d.String()
	test.ExpectSuccess(t, strings.Contains(out, "Call Stack"))
	test.ExpectSuccess(t, strings.Contains(out, "main main.c 3"))
	test.ExpectSuccess(t, strings.Contains(out, "[Info]: started"))
}
