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

package easyterm

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/stackscope/stackscope/curated"
)

// Sentinal error patterns.
const (
	NoTerminal = "easyterm: %v"
)

// list of ANSI control sequences used when redrawing the terminal.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	crit     sync.Mutex
	geometry Geometry

	// a value is sent every time the geometry changes. never blocks
	resized chan struct{}

	// stops the SIGWINCH handler
	cancel context.CancelFunc
	done   chan struct{}
}

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(NoTerminal, "input file required")
	}
	if outputFile == nil {
		return curated.Errorf(NoTerminal, "output file required")
	}

	pt.input = inputFile
	pt.output = outputFile

	// the cbreak attributes are derived from the canonical attributes so
	// that output processing is unchanged
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(NoTerminal, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	_ = pt.UpdateGeometry()

	pt.resized = make(chan struct{}, 1)
	pt.done = make(chan struct{})

	var ctx context.Context
	ctx, pt.cancel = context.WithCancel(context.Background())

	go func() {
		defer close(pt.done)

		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer signal.Stop(sigwinch)

		for {
			select {
			case <-sigwinch:
				if pt.UpdateGeometry() == nil {
					select {
					case pt.resized <- struct{}{}:
					default:
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler started by Initialise().
func (pt *Terminal) CleanUp() {
	pt.Print(ShowCursor)
	pt.CanonicalMode()
	if pt.cancel != nil {
		pt.cancel()
		<-pt.done
	}
}

// Resized returns a channel that receives a value whenever the geometry of
// the terminal changes.
func (pt *Terminal) Resized() <-chan struct{} {
	return pt.resized
}

// Print writes the string to the output file.
func (pt *Terminal) Print(s string) {
	_, _ = pt.output.WriteString(s)
}

// Output returns the output file of the terminal.
func (pt *Terminal) Output() *os.File {
	return pt.output
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	return pt.geometry
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(NoTerminal, err)
	}

	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.geometry = Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Keys are available as soon as
// they are pressed and are not echoed.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Keys starts reading the input file and returns a channel of decoded key
// presses. The channel is closed when the input file reaches the end or when
// the context is cancelled.
func (pt *Terminal) Keys(ctx context.Context) <-chan Key {
	return ReadKeys(ctx, pt.input)
}
