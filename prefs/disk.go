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

package prefs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/stackscope/stackscope/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is written to the head of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand while stackscope is running ***"

// Sentinal error patterns for disk operations.
const (
	DuplicateKey  = "prefs: key %s already added"
	NoPrefsFile   = "prefs: %v"
	MalformedFile = "prefs: malformed prefs file %s: %v"
)

// Disk represents preference values as stored on disk. Values are stored as
// a flat TOML table keyed by the dotted preference name.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(NoPrefsFile, "no path specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the file the prefs are stored in.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. The key is
// the name of the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the prefs file. a missing file is not an error and results in an
// empty table.
func (dsk *Disk) read() (map[string]any, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, curated.Errorf(NoPrefsFile, err)
	}

	table := make(map[string]any)
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, curated.Errorf(MalformedFile, dsk.path, err)
	}

	return table, nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	table, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		switch v := p.Get().(type) {
		case time.Duration:
			table[key] = v.String()
		default:
			table[key] = v
		}
	}

	var buf bytes.Buffer
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return curated.Errorf(MalformedFile, dsk.path, err)
	}

	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return curated.Errorf(NoPrefsFile, err)
	}

	return nil
}

// Load preference values from disk. Values on the current command line group
// take precedence over values in the file. A missing prefs file is not an
// error.
func (dsk *Disk) Load() error {
	table, err := dsk.read()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p := dsk.entries[key]

		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", key, err)
			}
			continue
		}

		if v, ok := table[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", key, err)
			}
		}
	}

	return nil
}

// String returns the current values of every added preference, one per
// line, sorted by key.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(key)
		s.WriteString(" :: ")
		s.WriteString(dsk.entries[key].String())
		s.WriteString("\n")
	}
	return s.String()
}
