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
	"fmt"
	"math"

	"github.com/jetsetilly/crtbeam/beam"
	"github.com/jetsetilly/crtbeam/prefs"
	"github.com/jetsetilly/crtbeam/resources"
)

// Preferences are the user-facing settings of the beam simulation.
type Preferences struct {
	dsk *prefs.Disk

	FramesPerHz          prefs.Float
	GainVsBlur           prefs.Float
	Gamma                prefs.Float
	ScanDirection        prefs.Int
	MotionSim            prefs.Bool
	MotionSpeed          prefs.Float
	AntiRetention        prefs.Bool
	AntiRetentionSlew    prefs.Float
	FPSDivisor           prefs.Float
	Split                prefs.Bool
	SplitPoint           prefs.Float
	SplitBorderWidth     prefs.Int
	SplitBrightnessMatch prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	// values that would make the cycle arithmetic undefined are rejected
	// before they are stored, whether they arrive from the prefs file or a
	// command line flag
	p.FramesPerHz.SetHookPre(floatRange("frames per hz", 1, maxFloat))
	p.GainVsBlur.SetHookPre(func(v prefs.Value) error {
		f := v.(float64)
		if f <= 0 || f > 1 {
			return fmt.Errorf("display: gain vs blur must be in the range (0,1] (%.3f)", f)
		}
		return nil
	})
	p.Gamma.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("display: gamma must be positive (%.3f)", v.(float64))
		}
		return nil
	})
	p.ScanDirection.SetHookPre(func(v prefs.Value) error {
		d := beam.Direction(v.(int))
		if d < beam.ScanTopToBottom || d > beam.ScanRightToLeft {
			return fmt.Errorf("display: unknown scan direction (%d)", v.(int))
		}
		return nil
	})
	p.MotionSpeed.SetHookPre(floatRange("motion speed", 0, maxFloat))
	p.AntiRetentionSlew.SetHookPre(floatRange("anti-retention slew", 0, maxFloat))
	p.FPSDivisor.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("display: fps divisor must be positive (%.3f)", v.(float64))
		}
		return nil
	})
	p.SplitPoint.SetHookPre(floatRange("split point", 0, 1))
	p.SplitBorderWidth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("display: split border width must not be negative (%d)", v.(int))
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	entries := []struct {
		key string
		p   prefs.Pref
	}{
		{"beam.framesPerHz", &p.FramesPerHz},
		{"beam.gainVsBlur", &p.GainVsBlur},
		{"beam.gamma", &p.Gamma},
		{"beam.scanDirection", &p.ScanDirection},
		{"beam.motionSim", &p.MotionSim},
		{"beam.motionSpeed", &p.MotionSpeed},
		{"beam.antiRetention", &p.AntiRetention},
		{"beam.antiRetentionSlew", &p.AntiRetentionSlew},
		{"beam.fpsDivisor", &p.FPSDivisor},
		{"beam.split", &p.Split},
		{"beam.splitPoint", &p.SplitPoint},
		{"beam.splitBorderWidth", &p.SplitBorderWidth},
		{"beam.splitBrightnessMatch", &p.SplitBrightnessMatch},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, fmt.Errorf("display: %w", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	return p, nil
}

const maxFloat = math.MaxFloat64

func floatRange(label string, min float64, max float64) func(prefs.Value) error {
	return func(v prefs.Value) error {
		f := v.(float64)
		if f < min || f > max {
			return fmt.Errorf("display: %s out of range (%.3f)", label, f)
		}
		return nil
	}
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	def := beam.NewConfig()
	p.FramesPerHz.Set(def.FramesPerHz)
	p.GainVsBlur.Set(def.GainVsBlur)
	p.Gamma.Set(def.Gamma)
	p.ScanDirection.Set(int(def.ScanDirection))
	p.MotionSim.Set(def.MotionSim)
	p.MotionSpeed.Set(def.MotionSpeed)
	p.AntiRetention.Set(def.AntiRetention)
	p.AntiRetentionSlew.Set(def.AntiRetentionSlew)
	p.FPSDivisor.Set(def.FPSDivisor)
	p.Split.Set(def.Split)
	p.SplitPoint.Set(def.SplitPoint)
	p.SplitBorderWidth.Set(def.SplitBorderWidth)
	p.SplitBrightnessMatch.Set(def.SplitBrightnessMatch)
}

// Load preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config converts the current preference values into a beam.Config.
func (p *Preferences) Config() beam.Config {
	return beam.Config{
		FramesPerHz:          p.FramesPerHz.Get().(float64),
		GainVsBlur:           p.GainVsBlur.Get().(float64),
		Gamma:                p.Gamma.Get().(float64),
		ScanDirection:        beam.Direction(p.ScanDirection.Get().(int)),
		MotionSim:            p.MotionSim.Get().(bool),
		MotionSpeed:          p.MotionSpeed.Get().(float64),
		AntiRetention:        p.AntiRetention.Get().(bool),
		AntiRetentionSlew:    p.AntiRetentionSlew.Get().(float64),
		FPSDivisor:           p.FPSDivisor.Get().(float64),
		Split:                p.Split.Get().(bool),
		SplitPoint:           p.SplitPoint.Get().(float64),
		SplitBorderWidth:     p.SplitBorderWidth.Get().(int),
		SplitBrightnessMatch: p.SplitBrightnessMatch.Get().(bool),
	}
}
