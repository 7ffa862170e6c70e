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

package memimage_test

import (
	"math"
	"testing"

	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/test"
)

func TestNewImage(t *testing.T) {
	mem, err := memimage.NewImage(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Len(), 0)
	test.ExpectEquality(t, mem.Rows(), 0)

	mem, err = memimage.NewImage(48)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Len(), 48)
	test.ExpectEquality(t, mem.Rows(), 3)

	_, err = memimage.NewImage(17)
	test.ExpectSuccess(t, curated.Is(err, memimage.InvalidSize))

	_, err = memimage.NewImage(-16)
	test.ExpectSuccess(t, curated.Is(err, memimage.InvalidSize))
}

func TestLittleEndian(t *testing.T) {
	mem, err := memimage.NewImage(16)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, mem.Load(0, []int8{53, 0, 0, 0, 12, -19, 0, -1}))

	test.ExpectEquality(t, mem.Read(0, 1), memimage.Value{Int: 53, Readable: true})
	test.ExpectEquality(t, mem.Read(0, 2).Int, int32(53))
	test.ExpectEquality(t, mem.Read(0, 4).Int, int32(53))

	// 12, 237 as unsigned bytes is 0xed0c which is negative as an int16
	test.ExpectEquality(t, mem.Read(4, 2).Int, int32(-4852))

	// 0, 255 is 0xff00
	test.ExpectEquality(t, mem.Read(6, 2).Int, int32(-256))

	// 0x ff 00 ed 0c
	test.ExpectEquality(t, mem.Read(4, 4).Int, int32(-16716532))

	test.ExpectEquality(t, mem.Read(5, 1).Int, int32(-19))
}

func TestUnreadable(t *testing.T) {
	mem, err := memimage.NewImage(16)
	test.DemandSuccess(t, err)

	for _, size := range []int{1, 2, 4} {
		test.ExpectEquality(t, mem.Read(16, size), memimage.Unreadable, size)
		test.ExpectEquality(t, mem.Read(17-size, size), memimage.Unreadable, size)
		test.ExpectEquality(t, mem.Read(16-size, size).Readable, true, size)
		test.ExpectEquality(t, mem.Read(-1, size), memimage.Unreadable, size)
	}

	// unsupported sizes
	test.ExpectEquality(t, mem.Read(0, 3), memimage.Unreadable)
	test.ExpectEquality(t, mem.Read(0, 8), memimage.Unreadable)
	test.ExpectEquality(t, mem.Read(0, 0), memimage.Unreadable)

	test.ExpectEquality(t, memimage.Unreadable.String(), "?")
	test.ExpectEquality(t, mem.Read(0, 1).String(), "0")
}

func TestLoad(t *testing.T) {
	mem, err := memimage.NewImage(32)
	test.DemandSuccess(t, err)

	err = mem.LoadBytes(30, []byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))

	// image is unchanged by the failed load
	v, ok := mem.Cell(30)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, int8(0))

	test.DemandSuccess(t, mem.LoadBytes(29, []byte{1, 2, 255}))
	v, _ = mem.Cell(31)
	test.ExpectEquality(t, v, int8(-1))

	_, ok = mem.Cell(32)
	test.ExpectFailure(t, ok)

	err = mem.Load(-1, []int8{1})
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))
}

func TestSlice(t *testing.T) {
	mem, err := memimage.NewImage(32)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Load(16, []int8{104, 11, 10, 23}))

	s, err := mem.Slice(16, 4)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), 4)
	test.ExpectEquality(t, s[3], int8(23))

	// slice is a copy
	s[0] = 0
	v, _ := mem.Cell(16)
	test.ExpectEquality(t, v, int8(104))

	_, err = mem.Slice(30, 4)
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))

	_, err = mem.Slice(0, -1)
	test.ExpectSuccess(t, curated.Is(err, memimage.InvalidRange))

	row := mem.Row(1)
	test.DemandEquality(t, len(row), memimage.RowWidth)
	test.ExpectEquality(t, row[1], int8(11))
	test.ExpectEquality(t, len(mem.Row(2)), 0)
}

func TestAddressOverflow(t *testing.T) {
	mem, err := memimage.NewImage(32)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, mem.InBounds(math.MaxInt, 4))
	test.ExpectFailure(t, mem.InBounds(math.MaxInt-1, 2))
	test.ExpectFailure(t, mem.InBounds(4, math.MaxInt))
	test.ExpectSuccess(t, mem.InBounds(28, 4))
	test.ExpectSuccess(t, mem.InBounds(32, 0))

	for _, size := range []int{1, 2, 4} {
		test.ExpectEquality(t, mem.Read(math.MaxInt, size), memimage.Unreadable, size)
		test.ExpectEquality(t, mem.Read(math.MaxInt-size+1, size), memimage.Unreadable, size)
	}

	_, err = mem.Slice(math.MaxInt, 4)
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))

	err = mem.Load(math.MaxInt, []int8{1, 2})
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))

	err = mem.LoadBytes(math.MaxInt, []byte{1, 2})
	test.ExpectSuccess(t, curated.Is(err, memimage.OutOfBounds))

	_, ok := mem.Cell(math.MaxInt)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(mem.Row(math.MaxInt/memimage.RowWidth)), 0)
}
