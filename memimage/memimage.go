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

package memimage

import (
	"fmt"

	"github.com/stackscope/stackscope/curated"
)

// RowWidth is the number of cells in each row of the memory view.
const RowWidth = 16

// Sentinel error patterns.
const (
	InvalidSize  = "memimage: invalid size (%d): must be a non-negative multiple of %d"
	OutOfBounds  = "memimage: range (%d, %d) is outside of image of length %d"
	InvalidRange = "memimage: invalid range (%d, %d)"
)

// Image is the memory of the virtual machine.
type Image struct {
	cells []int8
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage(size int) (*Image, error) {
	if size < 0 || size%RowWidth != 0 {
		return nil, curated.Errorf(InvalidSize, size, RowWidth)
	}
	return &Image{
		cells: make([]int8, size),
	}, nil
}

// Len returns the number of cells in the image.
func (mem *Image) Len() int {
	return len(mem.cells)
}

// Rows returns the number of rows in the image.
func (mem *Image) Rows() int {
	return len(mem.cells) / RowWidth
}

// InBounds returns true if the range starting at address and continuing for
// size cells is entirely inside the image.
func (mem *Image) InBounds(address int, size int) bool {
	if address < 0 || size < 0 {
		return false
	}
	return size <= len(mem.cells) && address <= len(mem.cells)-size
}

// Load copies data into the image starting at offset. The data must fit
// entirely inside the image. The image is unchanged if it does not.
func (mem *Image) Load(offset int, data []int8) error {
	if !mem.InBounds(offset, len(data)) {
		return curated.Errorf(OutOfBounds, offset, len(data), len(mem.cells))
	}
	copy(mem.cells[offset:], data)
	return nil
}

// LoadBytes is the same as Load() but for unsigned data, such as data read
// from a file.
func (mem *Image) LoadBytes(offset int, data []byte) error {
	if !mem.InBounds(offset, len(data)) {
		return curated.Errorf(OutOfBounds, offset, len(data), len(mem.cells))
	}
	for i, b := range data {
		mem.cells[offset+i] = int8(b)
	}
	return nil
}

// Slice returns a copy of length cells starting at offset.
func (mem *Image) Slice(offset int, length int) ([]int8, error) {
	if offset < 0 || length < 0 {
		return nil, curated.Errorf(InvalidRange, offset, length)
	}
	if !mem.InBounds(offset, length) {
		return nil, curated.Errorf(OutOfBounds, offset, length, len(mem.cells))
	}
	s := make([]int8, length)
	copy(s, mem.cells[offset:offset+length])
	return s, nil
}

// Row returns a copy of the numbered row. Returns nil if the row does not
// exist.
func (mem *Image) Row(row int) []int8 {
	s, err := mem.Slice(row*RowWidth, RowWidth)
	if err != nil {
		return nil
	}
	return s
}

// Cell returns the value of a single cell. The boolean is false if the
// address is outside of the image.
func (mem *Image) Cell(address int) (int8, bool) {
	if !mem.InBounds(address, 1) {
		return 0, false
	}
	return mem.cells[address], true
}

// Value is the result of a Read(). If Readable is false then the value of Int
// is meaningless.
type Value struct {
	Int      int32
	Readable bool
}

// Unreadable is returned by Read() when the requested range cannot be read.
var Unreadable = Value{}

func (v Value) String() string {
	if !v.Readable {
		return "?"
	}
	return fmt.Sprintf("%d", v.Int)
}

// Read returns the signed integer stored in size bytes at address. Supported
// sizes are 1, 2 and 4. Multi-byte values are little-endian.
func (mem *Image) Read(address int, size int) Value {
	if !mem.InBounds(address, size) {
		return Unreadable
	}

	c := mem.cells[address : address+size]

	switch size {
	case 1:
		return Value{Int: int32(c[0]), Readable: true}
	case 2:
		v := uint16(uint8(c[0])) | uint16(uint8(c[1]))<<8
		return Value{Int: int32(int16(v)), Readable: true}
	case 4:
		v := uint32(uint8(c[0])) | uint32(uint8(c[1]))<<8 | uint32(uint8(c[2]))<<16 | uint32(uint8(c[3]))<<24
		return Value{Int: int32(v), Readable: true}
	}

	return Unreadable
}
