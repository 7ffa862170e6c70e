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

package callstack_test

import (
	"testing"

	"github.com/stackscope/stackscope/callstack"
	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/test"
)

func TestPushPop(t *testing.T) {
	var s callstack.Stack

	_, ok := s.Top()
	test.ExpectFailure(t, ok)

	s.Push(callstack.Entry{Function: "main", File: "main.c", Line: 1})
	s.Push(callstack.Entry{Function: "fib", File: "fib.c", Line: 12})
	test.ExpectEquality(t, s.Len(), 2)

	top, ok := s.Top()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, top.Function, "fib")

	test.ExpectEquality(t, s.String(), "main main.c 1\nfib fib.c 12\n")

	test.ExpectSuccess(t, s.Pop())
	top, _ = s.Top()
	test.ExpectEquality(t, top.Function, "main")
	test.ExpectSuccess(t, s.Pop())
	test.ExpectEquality(t, s.Len(), 0)
}

func TestUnderflow(t *testing.T) {
	var s callstack.Stack

	err := s.Pop()
	test.ExpectSuccess(t, curated.Is(err, callstack.UnderflowError))
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, len(s.Entries()), 0)

	// repeated underflows never produce a negative length
	for i := 0; i < 10; i++ {
		test.ExpectFailure(t, s.Pop())
	}
	test.ExpectEquality(t, s.Len(), 0)

	s.Push(callstack.Entry{Function: "main"})
	test.ExpectEquality(t, s.Len(), 1)
}

func TestEntriesAndReset(t *testing.T) {
	var s callstack.Stack
	s.Push(callstack.Entry{Function: "a"})
	s.Push(callstack.Entry{Function: "b"})

	e := s.Entries()
	test.DemandEquality(t, len(e), 2)
	e[0].Function = "changed"
	test.ExpectEquality(t, s.Entries()[0].Function, "a")

	s.Reset()
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, s.String(), "")
}
