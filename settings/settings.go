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

// Package settings collates the preference values used by the watch mode of
// the application. Values are stored in the global preferences file and can
// be overridden on the command line with the -prefs flag.
package settings

import (
	"strings"
	"time"

	"github.com/stackscope/stackscope/curated"
	"github.com/stackscope/stackscope/memimage"
	"github.com/stackscope/stackscope/paths"
	"github.com/stackscope/stackscope/prefs"
	"github.com/stackscope/stackscope/wsclient"
)

// Sentinal error patterns.
const (
	BadAddress    = "settings: address must be a ws:// or wss:// URL: %v"
	BadMemorySize = "settings: memory size must be a multiple of %d no larger than %d: %v"
)

// MaxMemorySize is the largest memory image that can be configured.
const MaxMemorySize = 65536

// default values.
const (
	defaultAutoReconnect = true
	defaultRetryDelay    = time.Second
	defaultMemorySize    = 256
	defaultRecordings    = "recordings"
)

// Preferences defines and collates all the preference values used by the
// watch mode.
type Preferences struct {
	dsk *prefs.Disk

	Address       prefs.String
	AutoReconnect prefs.Bool
	RetryDelay    prefs.Duration
	MemorySize    prefs.Int
	Recordings    prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but uses the named file
// rather than the global preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Address.SetHookPre(func(v prefs.Value) error {
		s := v.(string)
		if !strings.HasPrefix(s, "ws://") && !strings.HasPrefix(s, "wss://") {
			return curated.Errorf(BadAddress, s)
		}
		return nil
	})
	p.MemorySize.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < memimage.RowWidth || n > MaxMemorySize || n%memimage.RowWidth != 0 {
			return curated.Errorf(BadMemorySize, memimage.RowWidth, MaxMemorySize, n)
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("connection.address", &p.Address); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("connection.autoReconnect", &p.AutoReconnect); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("connection.retryDelay", &p.RetryDelay); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("memory.size", &p.MemorySize); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("recorder.directory", &p.Recordings); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all values to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Address.Set(wsclient.DefaultAddress)
	_ = p.AutoReconnect.Set(defaultAutoReconnect)
	_ = p.RetryDelay.Set(defaultRetryDelay)
	_ = p.MemorySize.Set(defaultMemorySize)
	_ = p.Recordings.Set(defaultRecordings)
}

// Load values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
