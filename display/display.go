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

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackscope/stackscope/callstack"
	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/highlight"
	"github.com/stackscope/stackscope/logger"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/session"
	"github.com/stackscope/stackscope/terminal/easyterm"
	"github.com/stackscope/stackscope/valuestack"
	"github.com/stackscope/stackscope/vmlog"
)

// View is the read access to the models required by the Display. The Hover
// and Unhover functions change the active highlight.
type View interface {
	State() connection.State
	Stats() session.Stats
	CallStack() []callstack.Entry
	ValueStack() []valuestack.Entry
	Allocations() []valuestack.Allocation
	LogEntries() []vmlog.Entry
	Memory() *memimage.Image
	HighlightRange() (highlight.Range, bool)
	Hover(valuestack.Allocation)
	Unhover()
	LastDiagnostic() (logger.Entry, bool)
}

// Command is returned by HandleKey() for key presses that the Display cannot
// act on by itself.
type Command int

// List of valid Command values.
const (
	CommandNone Command = iota
	CommandQuit
	CommandReconnect
	CommandDisconnect
	CommandToggleAutoReconnect
	CommandWriteGraph
)

// the number of log entries shown
const logLines = 8

// the value of selected when no allocation is selected
const noSelection = -1

const helpLine = "j/k select  u unselect  r reconnect  d disconnect  a auto-reconnect  g graph  q quit"

// Display renders a View.
type Display struct {
	view   View
	plain  bool
	styles styles

	// index into View.Allocations() of the selected allocation
	selected int

	// the value of Stats.Connections when the selection was made. a new
	// connection clears the selection
	connections int

	address       string
	autoReconnect bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(view View, plain bool) *Display {
	return &Display{
		view:     view,
		plain:    plain,
		styles:   newStyles(),
		selected: noSelection,
	}
}

// SetConnectionInfo sets the connection details shown in the status line.
func (d *Display) SetConnectionInfo(address string, autoReconnect bool) {
	d.address = address
	d.autoReconnect = autoReconnect
}

func (d *Display) render(st lipgloss.Style, s string) string {
	if d.plain {
		return s
	}
	return st.Render(s)
}

// Selected returns the selected allocation.
func (d *Display) Selected() (valuestack.Allocation, bool) {
	d.sync()
	if d.selected == noSelection {
		return valuestack.Allocation{}, false
	}
	return d.view.Allocations()[d.selected], true
}

// Select moves the selection cursor by delta allocations, wrapping at either
// end. The selected allocation is hovered.
func (d *Display) Select(delta int) {
	d.sync()

	allocs := d.view.Allocations()
	if len(allocs) == 0 {
		return
	}

	if d.selected == noSelection {
		if delta < 0 {
			d.selected = len(allocs) - 1
		} else {
			d.selected = 0
		}
	} else {
		d.selected = ((d.selected+delta)%len(allocs) + len(allocs)) % len(allocs)
	}

	d.connections = d.view.Stats().Connections
	d.view.Hover(allocs[d.selected])
}

// Unselect clears the selection cursor and the highlight.
func (d *Display) Unselect() {
	d.selected = noSelection
	d.view.Unhover()
}

// sync makes sure the selection is still valid after the models have changed.
func (d *Display) sync() {
	if d.selected == noSelection {
		return
	}

	if d.view.Stats().Connections != d.connections {
		d.Unselect()
		return
	}

	allocs := d.view.Allocations()
	if len(allocs) == 0 {
		d.Unselect()
		return
	}
	if d.selected >= len(allocs) {
		d.selected = len(allocs) - 1
	}

	// the allocation under the cursor may have been replaced
	d.view.Hover(allocs[d.selected])
}

// HandleKey acts on the key press and returns a Command for the caller to
// act on.
func (d *Display) HandleKey(k easyterm.Key) Command {
	switch k.Special {
	case easyterm.Interrupt:
		return CommandQuit
	case easyterm.Down:
		d.Select(1)
		return CommandNone
	case easyterm.Up:
		d.Select(-1)
		return CommandNone
	case easyterm.Escape:
		d.Unselect()
		return CommandNone
	case easyterm.NotSpecial:
	default:
		return CommandNone
	}

	switch k.Rune {
	case 'q':
		return CommandQuit
	case 'j':
		d.Select(1)
	case 'k':
		d.Select(-1)
	case 'u':
		d.Unselect()
	case 'r':
		return CommandReconnect
	case 'd':
		return CommandDisconnect
	case 'a':
		return CommandToggleAutoReconnect
	case 'g':
		return CommandWriteGraph
	}

	return CommandNone
}

// Render the view to the writer.
func (d *Display) Render(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func (d *Display) String() string {
	d.sync()

	callPanel := d.panel("Call Stack", d.callStack())
	watchPanel := d.panel("Watch", d.watch())
	memPanel := d.panel("Memory", d.memory())
	logPanel := d.panel("Log", d.log())

	var body string
	if d.plain {
		body = strings.Join([]string{callPanel, watchPanel, memPanel, logPanel}, "\n\n")
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top, callPanel, watchPanel)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, memPanel, logPanel)
		body = lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n", d.status(), body, d.render(d.styles.help, helpLine))
}

func (d *Display) panel(title string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{"(empty)"}
	}

	s := fmt.Sprintf("%s\n%s", d.render(d.styles.title, title), strings.Join(lines, "\n"))
	if d.plain {
		return s
	}
	return d.styles.panel.Render(s)
}

func (d *Display) status() string {
	state := d.view.State()

	var st lipgloss.Style
	switch state {
	case connection.Connected:
		st = d.styles.connected
	case connection.Connecting:
		st = d.styles.connecting
	default:
		st = d.styles.disconnected
	}

	s := []string{d.render(st, state.String())}
	if d.address != "" {
		auto := "off"
		if d.autoReconnect {
			auto = "on"
		}
		s = append(s, fmt.Sprintf("%s (auto-reconnect %s)", d.address, auto))
	}

	stats := d.view.Stats()
	s = append(s, fmt.Sprintf("events %d", stats.Applied))
	if stats.Discarded > 0 {
		s = append(s, fmt.Sprintf("discarded %d", stats.Discarded))
	}

	if stats.Inconsistencies > 0 {
		s = append(s, d.render(d.styles.inconsistent, fmt.Sprintf("INCONSISTENT (%d)", stats.Inconsistencies)))
		if diag, ok := d.view.LastDiagnostic(); ok {
			s = append(s, strings.TrimSpace(diag.String()))
		}
	}

	return strings.Join(s, " | ")
}

func (d *Display) callStack() []string {
	calls := d.view.CallStack()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.String())
	}
	return lines
}

func (d *Display) watch() []string {
	mem := d.view.Memory()
	entries := d.view.ValueStack()
	lines := make([]string, 0, len(entries))

	var allocIdx int
	for _, e := range entries {
		switch e := e.(type) {
		case valuestack.Frame:
			lines = append(lines, d.render(d.styles.frame, "  "+e.String()))
		case valuestack.Allocation:
			s := fmt.Sprintf("%s Value: %s", e, e.Render(mem))
			if allocIdx == d.selected {
				lines = append(lines, d.render(d.styles.selected, "> "+s))
			} else {
				lines = append(lines, "  "+s)
			}
			allocIdx++
		}
	}

	return lines
}

func (d *Display) memory() []string {
	mem := d.view.Memory()
	rng, active := d.view.HighlightRange()

	lines := make([]string, 0, mem.Rows())
	for row := 0; row < mem.Rows(); row++ {
		var s strings.Builder
		fmt.Fprintf(&s, "%04x:", row*memimage.RowWidth)
		for i, v := range mem.Row(row) {
			addr := row*memimage.RowWidth + i
			if active && rng.Contains(addr) {
				s.WriteString(d.render(d.styles.highlight, fmt.Sprintf("[%4d]", v)))
			} else {
				fmt.Fprintf(&s, " %4d ", v)
			}
		}
		lines = append(lines, s.String())
	}

	return lines
}

func (d *Display) log() []string {
	var lines []string
	entries := d.view.LogEntries()
	if len(entries) > logLines {
		entries = entries[len(entries)-logLines:]
	}
	for _, e := range entries {
		if e.Kind == vmlog.KindError {
			lines = append(lines, d.render(d.styles.logError, e.String()))
		} else {
			lines = append(lines, e.String())
		}
	}
	return lines
}
