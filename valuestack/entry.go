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

package valuestack

import (
	"fmt"

	"github.com/stackscope/stackscope/memimage"
)

// Type is the declared type of an Allocation. The list of constants is not
// exhaustive and type names that are not listed are kept as they are.
type Type string

// List of known allocation types.
const (
	TypeInt8  Type = "Int8"
	TypeChar  Type = "Char"
	TypeInt16 Type = "Int16"
	TypeInt32 Type = "Int32"
)

// Entry is implemented by Frame and Allocation. The interface is sealed and
// there are no other implementations.
type Entry interface {
	fmt.Stringer
	entry()
}

// Frame marks the start of a lexical scope. InitialSize is the cumulative
// size of the stack when the scope was opened.
type Frame struct {
	InitialSize int
}

func (Frame) entry() {}

func (f Frame) String() string {
	return fmt.Sprintf("Stack Frame (initial size: %d)", f.InitialSize)
}

// Allocation is a value occupying Size bytes of the memory image starting at
// Address. The Name field is empty for anonymous values.
type Allocation struct {
	Name    string
	Type    Type
	Size    int
	Address int
}

func (Allocation) entry() {}

// Label returns the name of the allocation or "?" if it is anonymous.
func (a Allocation) Label() string {
	if a.Name == "" {
		return "?"
	}
	return a.Name
}

// Anonymous returns true if the allocation has no name.
func (a Allocation) Anonymous() bool {
	return a.Name == ""
}

func (a Allocation) String() string {
	return fmt.Sprintf("%s %s (%d b) %d", a.Label(), a.Type, a.Size, a.Address)
}

// Value returns the value of the allocation as read from the memory image.
func (a Allocation) Value(mem *memimage.Image) memimage.Value {
	return mem.Read(a.Address, a.Size)
}

// Render returns the value of the allocation as it should be displayed. Single
// byte Char values are shown as a quoted character. Values that cannot be
// read from the memory image are shown as "?".
func (a Allocation) Render(mem *memimage.Image) string {
	v := a.Value(mem)
	if !v.Readable {
		return v.String()
	}

	if a.Size == 1 && a.Type == TypeChar {
		return fmt.Sprintf("%q", rune(uint8(v.Int)))
	}

	return v.String()
}
