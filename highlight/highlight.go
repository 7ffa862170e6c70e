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

// Package highlight tracks which range of the memory image should be
// emphasised in the memory view. The range is taken from the allocation that
// is currently hovered in the watch view. There is at most one active range
// and the most recent hover wins.
package highlight

import "github.com/stackscope/stackscope/valuestack"

// Range is a span of the memory image.
type Range struct {
	Offset int
	Length int
}

// Contains returns true if the address is inside the range.
func (r Range) Contains(address int) bool {
	return address >= r.Offset && address-r.Offset < r.Length
}

// Coordinator holds the active range. The zero value has no active range.
type Coordinator struct {
	active bool
	rng    Range
}

// Hover makes the memory occupied by the allocation the active range.
func (c *Coordinator) Hover(a valuestack.Allocation) {
	c.rng = Range{Offset: a.Address, Length: a.Size}
	c.active = c.rng.Length > 0
}

// Unhover clears the active range.
func (c *Coordinator) Unhover() {
	c.active = false
	c.rng = Range{}
}

// Range returns the active range. The boolean is false if there is no active
// range.
func (c *Coordinator) Range() (Range, bool) {
	return c.rng, c.active
}

// Contains returns true if address is inside the active range.
func (c *Coordinator) Contains(address int) bool {
	return c.active && c.rng.Contains(address)
}
