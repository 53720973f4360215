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

package display

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/crtbeam/beam"
	"github.com/jetsetilly/crtbeam/prefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchBeamDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	require.NoError(t, err)

	assert.Equal(t, beam.NewConfig(), p.Config())
	assert.NoError(t, p.Config().Validate())
}

func TestValidationHooks(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	require.NoError(t, err)

	// rejected values leave the previous value in place
	assert.Error(t, p.FramesPerHz.Set(0.5))
	assert.Equal(t, beam.NewConfig().FramesPerHz, p.FramesPerHz.Get())

	assert.Error(t, p.GainVsBlur.Set(0.0))
	assert.Error(t, p.GainVsBlur.Set(1.5))
	assert.NoError(t, p.GainVsBlur.Set(1.0))

	assert.Error(t, p.Gamma.Set(-2.4))
	assert.Error(t, p.ScanDirection.Set(99))
	assert.Error(t, p.MotionSpeed.Set(-1.0))
	assert.Error(t, p.FPSDivisor.Set(0.0))
	assert.Error(t, p.SplitPoint.Set(1.5))
	assert.Error(t, p.SplitBorderWidth.Set(-1))

	// everything the hooks let through must also pass Validate()
	assert.NoError(t, p.Config().Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	require.NoError(t, err)

	require.NoError(t, p.FramesPerHz.Set(3.75))
	require.NoError(t, p.Split.Set(true))
	require.NoError(t, p.ScanDirection.Set(int(beam.ScanLeftToRight)))
	require.NoError(t, p.Save())

	// a second Preferences instance on the same path picks up the saved
	// values during initialisation
	q, err := newPreferences(pth)
	require.NoError(t, err)

	assert.Equal(t, 3.75, q.FramesPerHz.Get())
	assert.Equal(t, true, q.Split.Get())
	assert.Equal(t, beam.ScanLeftToRight, q.Config().ScanDirection)

	q.SetDefaults()
	assert.Equal(t, beam.NewConfig(), q.Config())
}

func TestInvalidSavedValueRejectedOnLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	require.NoError(t, err)
	require.NoError(t, p.Save())

	// sneak an out-of-range value into the file behind the prefs system
	var raw prefs.Float
	dsk, err := prefs.NewDisk(pth)
	require.NoError(t, err)
	require.NoError(t, dsk.Add("beam.framesPerHz", &raw))
	require.NoError(t, raw.Set(0.25))
	require.NoError(t, dsk.Save())

	_, err = newPreferences(pth)
	assert.Error(t, err)
}
