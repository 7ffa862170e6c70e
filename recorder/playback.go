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

package recorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/logger"
)

// EndOfTape is returned by Step() when there are no more frames.
const EndOfTape = "playback: end of tape"

// Target is the recipient of frames during playback. It is satisfied by
// session.Session.
type Target interface {
	OnConnectionStateChanged(state connection.State)
	ApplyRaw(b []byte) error
}

// Playback replays the frames of a tape.
type Playback struct {
	Header Header

	frames []Frame
	pos    int
}

func (plb *Playback) String() string {
	if len(plb.frames) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.pos, len(plb.frames), 100*float64(plb.pos)/float64(len(plb.frames)))
}

// NewPlayback reads the named tape file.
func NewPlayback(filename string) (*Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	defer f.Close()
	return NewPlaybackReader(f)
}

// NewPlaybackReader reads a tape from an io.Reader.
func NewPlaybackReader(r io.Reader) (*Playback, error) {
	plb := &Playback{}
	dec := cbor.NewDecoder(r)

	if err := dec.Decode(&plb.Header); err != nil {
		return nil, curated.Errorf(NotATape)
	}
	if plb.Header.Magic != Magic {
		return nil, curated.Errorf(NotATape)
	}
	if plb.Header.Version != Version {
		return nil, curated.Errorf(BadVersion, plb.Header.Version)
	}

	for {
		var f Frame
		err := dec.Decode(&f)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				logger.Logf(logger.Allow, "playback", "ignoring truncated frame after frame %d", len(plb.frames))
				break // for loop
			}
			return nil, curated.Errorf(PlaybackError, err)
		}
		plb.frames = append(plb.frames, f)
	}

	return plb, nil
}

// Len returns the number of frames in the tape.
func (plb *Playback) Len() int {
	return len(plb.frames)
}

// Pos returns the number of frames that have been played.
func (plb *Playback) Pos() int {
	return plb.pos
}

// Frames returns a copy of every frame in the tape.
func (plb *Playback) Frames() []Frame {
	return append([]Frame(nil), plb.frames...)
}

// Rewind to the start of the tape.
func (plb *Playback) Rewind() {
	plb.pos = 0
}

// Step applies the next frame to the target. The error returned by the
// target, if any, is returned along with the frame. Returns EndOfTape if
// there are no more frames.
func (plb *Playback) Step(t Target) (Frame, error) {
	if plb.pos >= len(plb.frames) {
		return Frame{}, curated.Errorf(EndOfTape)
	}

	f := plb.frames[plb.pos]
	plb.pos++

	if f.IsState {
		t.OnConnectionStateChanged(f.State)
		return f, nil
	}

	return f, t.ApplyRaw(f.Payload)
}

// Play applies every remaining frame to the target. If realtime is true then
// the timing of the original recording is kept. The onFrame function, if not
// nil, is called after every frame with the result of Step().
//
// Play returns early with the context error if the context is cancelled.
func (plb *Playback) Play(ctx context.Context, t Target, realtime bool, onFrame func(Frame, error)) error {
	start := time.Now()
	if plb.pos < len(plb.frames) {
		start = start.Add(-plb.frames[plb.pos].Offset)
	}

	for plb.pos < len(plb.frames) {
		if realtime {
			wait := time.Until(start.Add(plb.frames[plb.pos].Offset))
			if wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := plb.Step(t)
		if onFrame != nil {
			onFrame(f, err)
		}
	}

	return nil
}
