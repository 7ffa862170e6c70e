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
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/logger"
	"github.com/stackscope/stackscope/wsclient"
)

// Recorder writes updates to a tape.
type Recorder struct {
	crit   sync.Mutex
	output io.WriteCloser
	enc    *cbor.Encoder

	start time.Time
	seq   int
}

// NewRecorder creates a new tape file and writes the header. The Created and
// Magic fields of the header are set by the function.
func NewRecorder(filename string, hdr Header) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec, err := NewRecorderWriter(f, hdr)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", filename)

	return rec, nil
}

// NewRecorderWriter is like NewRecorder() but writes to an existing
// io.WriteCloser.
func NewRecorderWriter(output io.WriteCloser, hdr Header) (*Recorder, error) {
	rec := &Recorder{
		output: output,
		enc:    encMode.NewEncoder(output),
		start:  time.Now(),
	}

	hdr.Magic = Magic
	hdr.Version = Version
	hdr.Created = rec.start.UnixNano()

	if err := rec.enc.Encode(hdr); err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	return rec, nil
}

// Record writes the update to the tape.
func (rec *Recorder) Record(u wsclient.Update) error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.enc == nil {
		return curated.Errorf(RecordingError, "recorder is closed")
	}

	f := Frame{
		Seq:     rec.seq,
		Offset:  time.Since(rec.start),
		IsState: u.IsState,
		State:   u.State,
		Payload: u.Payload,
	}

	if err := rec.enc.Encode(f); err != nil {
		return curated.Errorf(RecordingError, err)
	}
	rec.seq++

	return nil
}

// Len returns the number of frames recorded.
func (rec *Recorder) Len() int {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.seq
}

// End the recording and close the output.
func (rec *Recorder) End() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.enc == nil {
		return nil
	}
	rec.enc = nil

	if err := rec.output.Close(); err != nil {
		return curated.Errorf(RecordingError, err)
	}

	logger.Logf(logger.Allow, "recorder", "%d frames recorded", rec.seq)

	return nil
}
