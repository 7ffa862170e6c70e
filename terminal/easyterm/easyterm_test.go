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

package easyterm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stackscope/stackscope/terminal/easyterm"
	"github.com/stackscope/stackscope/test"
)

func TestDecodeKeys(t *testing.T) {
	keys := easyterm.DecodeKeys([]byte("j\x1b[A\x1b[Bq\r\x03\x1b"))
	test.DemandEquality(t, len(keys), 7)
	test.ExpectEquality(t, keys[0], easyterm.Key{Rune: 'j'})
	test.ExpectEquality(t, keys[1], easyterm.Key{Special: easyterm.Up})
	test.ExpectEquality(t, keys[2], easyterm.Key{Special: easyterm.Down})
	test.ExpectEquality(t, keys[3], easyterm.Key{Rune: 'q'})
	test.ExpectEquality(t, keys[4], easyterm.Key{Special: easyterm.Enter})
	test.ExpectEquality(t, keys[5], easyterm.Key{Special: easyterm.Interrupt})
	test.ExpectEquality(t, keys[6], easyterm.Key{Special: easyterm.Escape})

	test.ExpectEquality(t, keys[1].String(), "Up")
	test.ExpectEquality(t, keys[3].String(), "q")
}

func TestDecodeUnicode(t *testing.T) {
	keys := easyterm.DecodeKeys([]byte("é"))
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Rune, 'é')
}

func TestReadKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var s strings.Builder
	for k := range easyterm.ReadKeys(ctx, strings.NewReader("abc\x1b[D")) {
		s.WriteString(k.String())
	}
	test.ExpectEquality(t, s.String(), "abcLeft")
}
