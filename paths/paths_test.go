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

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/stackscope/stackscope/paths"
	"github.com/stackscope/stackscope/test"
)

// chdir changes to a new temporary directory containing the base resource
// path. the original working directory is restored when the test ends.
func chdir(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	test.DemandSuccess(t, os.Mkdir(".stackscope", 0o700))
}

func TestPaths(t *testing.T) {
	chdir(t)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".stackscope/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".stackscope/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".stackscope/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".stackscope")

	// sub-directories are created
	info, err := os.Stat(".stackscope/foo/bar")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("recording", "localhost")
	test.ExpectSuccess(t, regexp.MustCompile(`^recording_localhost_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("graph", "  ")
	test.ExpectSuccess(t, regexp.MustCompile(`^graph_\d{8}_\d{6}$`).MatchString(fn))
}
