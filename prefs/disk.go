// This file is part of CRTBeam.
//
// CRTBeam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CRTBeam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CRTBeam.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the name of the preferences file used unless the
// caller specifies otherwise.
const DefaultPrefsFile = "crtbeam.prefs"

// the first line of every prefs file. files without it are rejected rather
// than partially parsed
const fileHeader = "*crtbeam*"

// the string separating a key from its value
const keySep = " :: "

// Disk gathers preference values under string keys, ready for saving to and
// loading from a single preferences file.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at the specified path need not exist yet.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// Add a preference value to the list of values to be saved/loaded under the
// specified key.
func (dsk *Disk) Add(key string, p Pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns the disk entries in the form they are written to the prefs
// file, sorted by key.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// Save the current values of all added preferences to the prefs file,
// replacing whatever was there before.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, fileHeader); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	if _, err := f.WriteString(dsk.String()); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}

	return nil
}

// Load values from the prefs file into the added preferences. A prefs file
// that does not exist yet is not an error; added preferences simply keep
// their current values. Keys in the file with no corresponding preference
// are ignored.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: load: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check file header
	if !scanner.Scan() || scanner.Text() != fileHeader {
		return fmt.Errorf("prefs: load: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := strings.Cut(line, keySep)
		if !ok {
			return fmt.Errorf("prefs: load: malformed entry (%s)", line)
		}

		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(value); err != nil {
				return fmt.Errorf("prefs: load: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: load: %w", err)
	}

	return nil
}
