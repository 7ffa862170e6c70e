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

// Package memimage is the memory image of the virtual machine being watched.
// The image is a fixed length sequence of signed bytes. The length is decided
// when the image is created and must be a multiple of RowWidth, which is the
// number of cells shown on a single row of the memory view.
//
// The image only changes when explicitly loaded with Load() or LoadBytes().
// The event stream never writes to memory. Allocation events only describe
// which part of memory a value occupies.
//
// Multi-byte values are read in little-endian order. This is the case for
// both 2 and 4 byte reads. A read that would reach outside of the image, or
// that asks for a size other than 1, 2 or 4 bytes, returns the Unreadable
// value rather than an error. The String() function of Unreadable is "?".
package memimage
