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

// Package logger is the diagnostics log for the application. It records
// conditions that are worth knowing about but which are never fatal: events
// that could not be classified, stack underflows, allocations outside of the
// memory image, connection failures.
//
// The package level functions operate on a single central log. Independent
// logs can be created with NewLogger(), which is useful when a component wants
// to keep its own diagnostics, for display or for testing, in addition to
// forwarding them to the central log.
//
// Every request to log something must be accompanied by a Permission. The
// Allow value can be used when logging should always happen.
//
// Repeated entries are compressed. An entry with the same tag and detail as
// the most recent entry increases the repeat count of that entry rather than
// adding a new one.
package logger
