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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/display"
	"github.com/stackscope/stackscope/logger"
	"github.com/stackscope/stackscope/modalflag"
	"github.com/stackscope/stackscope/recorder"
	"github.com/stackscope/stackscope/session"
	"github.com/stackscope/stackscope/terminal/easyterm"
)

func replay(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("in step mode any key plays the next frame. j/k/u move the selection and q quits")

	step := md.AddBool("step", false, "wait for a key press between frames")
	realtime := md.AddBool("realtime", false, "keep the timing of the recording")
	memFile := md.AddString("memory", "", "load the memory image from a raw `file`")
	graph := md.AddString("graph", "", "write a graphviz dump of the final models to `file`")
	log := md.AddBool("log", false, "echo diagnostics log to stderr")
	plain := md.AddBool("plain", false, "plain output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("tape file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	mem, err := newMemory(plb.Header.MemorySize, *memFile)
	if err != nil {
		return err
	}
	sess := session.NewSession(mem)

	disp := display.NewDisplay(sess, *plain)
	disp.SetConnectionInfo(plb.Header.Address, false)

	if *step {
		err = stepReplay(ctx, plb, sess, disp, *plain)
	} else {
		err = plb.Play(ctx, sess, *realtime, nil)
		if err == nil {
			redraw(nil, os.Stdout, disp)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("* %s frames played\n", plb)

	if *graph != "" {
		return writeGraphFile(sess, *graph)
	}

	return nil
}

func stepReplay(ctx context.Context, plb *recorder.Playback, sess *session.Session, disp *display.Display, plain bool) error {
	term, restore, err := screen(plain)
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys <-chan easyterm.Key
	if term != nil {
		keys = term.Keys(ctx)
	} else {
		keys = easyterm.ReadKeys(ctx, os.Stdin)
	}

	redraw(term, os.Stdout, disp)

	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}

			switch k.Rune {
			case 'j', 'k', 'u':
				disp.HandleKey(k)
			default:
				if disp.HandleKey(k) == display.CommandQuit {
					return nil
				}

				f, err := plb.Step(sess)
				if curated.Is(err, recorder.EndOfTape) {
					return nil
				}
				if err != nil {
					logger.Logf(logger.Allow, "replay", "frame %d: %v", f.Seq, err)
				}
			}

			redraw(term, os.Stdout, disp)
		}
	}
}
