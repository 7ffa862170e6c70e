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
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/stackscope/stackscope/connection"
	"github.com/stackscope/stackscope/wsclient"
)

// Magic identifies a tape file.
const Magic = "stackscope tape"

// Version of the tape format.
const Version = 1

// Sentinal error patterns.
const (
	RecordingError = "recorder: %v"
	PlaybackError  = "playback: %v"
	NotATape       = "playback: not a tape file"
	BadVersion     = "playback: unsupported tape version (%d)"
)

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("recorder: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Header is the first item in a tape.
type Header struct {
	Magic      string `cbor:"1,keyasint"`
	Version    int    `cbor:"2,keyasint"`
	Address    string `cbor:"3,keyasint,omitempty"`
	MemorySize int    `cbor:"4,keyasint"`

	// unix time in nanoseconds
	Created int64 `cbor:"5,keyasint"`
}

// CreatedTime returns the Created field as a time.Time.
func (h Header) CreatedTime() time.Time {
	return time.Unix(0, h.Created)
}

// Frame is a single update from the connection manager.
type Frame struct {
	Seq int `cbor:"1,keyasint"`

	// time since the start of the recording
	Offset time.Duration `cbor:"2,keyasint"`

	IsState bool             `cbor:"3,keyasint"`
	State   connection.State `cbor:"4,keyasint"`
	Payload []byte           `cbor:"5,keyasint,omitempty"`
}

func (f Frame) String() string {
	if f.IsState {
		return fmt.Sprintf("%d @ %v: state %v", f.Seq, f.Offset, f.State)
	}
	return fmt.Sprintf("%d @ %v: %s", f.Seq, f.Offset, f.Payload)
}

// Update converts the frame back to the form sent by the connection manager.
func (f Frame) Update() wsclient.Update {
	return wsclient.Update{
		IsState: f.IsState,
		State:   f.State,
		Payload: f.Payload,
	}
}
