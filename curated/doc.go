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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern they were created with, rather than by a sentinel
// value or by string comparison of the final message.
//
// Errors are created with Errorf(). The first argument is a formatting
// pattern and it is the pattern that is used to identify the error later:
//
//	const UnknownType = "event: unknown type %q"
//
//	err := curated.Errorf(UnknownType, "heap")
//
//	if curated.Is(err, UnknownType) {
//		// discard event and continue
//	}
//
// Has() performs the same test but looks through the entire chain of curated
// errors, following any curated error that was used as a placeholder value.
//
// The Error() string is normalised such that duplicate adjacent parts of the
// message are removed. Parts are separated by the sub-string ": ". This means
// that a package can wrap an error with its own prefix without worrying
// whether the error it received already has that prefix:
//
//	event: event: unknown type "heap"
//
// is reported as:
//
//	event: unknown type "heap"
//
// Curated errors also implement Unwrap(), returning the first error found in
// the placeholder values, so that errors.Is() and errors.As() from the
// standard library work as expected with wrapped errors.
package curated
