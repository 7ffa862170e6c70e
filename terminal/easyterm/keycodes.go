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
	"bufio"
	"context"
	"io"
	"unicode/utf8"
)

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3
	KeyTab       = 9
	KeyCarriage  = 13
	KeyEsc       = 27
	KeyBackspace = 127
)

// EscCursor is the character that follows KeyEsc in a cursor sequence.
const EscCursor = '['

// list of ASCII codes for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Special keys that do not have a printable rune.
type Special int

// List of valid Special values.
const (
	NotSpecial Special = iota
	Up
	Down
	Left
	Right
	Escape
	Enter
	Interrupt
)

// Key is a single decoded key press. If Special is NotSpecial then Rune is
// the character pressed.
type Key struct {
	Rune    rune
	Special Special
}

func (k Key) String() string {
	switch k.Special {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Escape:
		return "Esc"
	case Enter:
		return "Enter"
	case Interrupt:
		return "Ctrl-C"
	}
	return string(k.Rune)
}

// DecodeKeys decodes a buffer of input into key presses. Incomplete escape
// sequences at the end of the buffer are decoded as the Escape key.
func DecodeKeys(b []byte) []Key {
	var keys []Key

	for len(b) > 0 {
		switch b[0] {
		case KeyEsc:
			if len(b) >= 3 && b[1] == EscCursor {
				switch b[2] {
				case CursorUp:
					keys = append(keys, Key{Special: Up})
				case CursorDown:
					keys = append(keys, Key{Special: Down})
				case CursorForward:
					keys = append(keys, Key{Special: Right})
				case CursorBackward:
					keys = append(keys, Key{Special: Left})
				}
				b = b[3:]
				continue
			}
			keys = append(keys, Key{Special: Escape})
			b = b[1:]
		case KeyCarriage, '\n':
			keys = append(keys, Key{Special: Enter})
			b = b[1:]
		case KeyInterrupt:
			keys = append(keys, Key{Special: Interrupt})
			b = b[1:]
		default:
			r, n := utf8.DecodeRune(b)
			keys = append(keys, Key{Rune: r})
			b = b[n:]
		}
	}

	return keys
}

// ReadKeys reads from r and sends decoded key presses to the returned
// channel. The channel is closed when r returns an error or when the context
// is cancelled. A blocked read is not interrupted by the context.
func ReadKeys(ctx context.Context, r io.Reader) <-chan Key {
	keys := make(chan Key, 16)

	go func() {
		defer close(keys)

		rd := bufio.NewReader(r)
		buf := make([]byte, 64)

		for {
			n, err := rd.Read(buf)
			for _, k := range DecodeKeys(buf[:n]) {
				select {
				case keys <- k:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return keys
}
