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

package beam

import (
	"fmt"
	"math"

	"github.com/jetsetilly/crtbeam/colour"
)

// Direction is the axis and orientation of the simulated beam sweep.
type Direction int

// List of valid Direction values. The default is top to bottom, matching the
// scan of almost every consumer CRT.
const (
	ScanTopToBottom Direction = iota
	ScanBottomToTop
	ScanLeftToRight
	ScanRightToLeft
)

func (dir Direction) String() string {
	switch dir {
	case ScanTopToBottom:
		return "top to bottom"
	case ScanBottomToTop:
		return "bottom to top"
	case ScanLeftToRight:
		return "left to right"
	case ScanRightToLeft:
		return "right to left"
	}
	return "unknown"
}

// Config are the tunable parameters of the simulation. Fields are fixed at
// simulator construction; there is no per-pixel reconfiguration.
type Config struct {
	// number of display sub-frames per simulated CRT refresh. must be at
	// least 1 and may be fractional (eg. 3.75 for a 225Hz display simulating
	// a 60Hz CRT)
	FramesPerHz float64

	// trade brightness for additional blur reduction. values below 1 shorten
	// every emission interval, darkening the image but tightening the
	// temporal spread of each pixel
	GainVsBlur float64

	// exponent of the gamma transfer curve used for the linear light
	// conversions
	Gamma float64

	ScanDirection Direction

	// MotionSim scrolls the sampled coordinate horizontally by MotionSpeed
	// for every sub-frame of age. this gives static synthetic content the
	// appearance of motion and also serves as anti-retention movement. real
	// video content will usually want this disabled
	MotionSim   bool
	MotionSpeed float64

	// when FramesPerHz is an even integer the simulated cycle aligns exactly
	// with the panel refresh and static patterning can burn in on some LCDs.
	// AntiRetention adds the slew value to FramesPerHz to break the
	// alignment
	AntiRetention     bool
	AntiRetentionSlew float64

	// FPSDivisor stretches simulated time relative to wall-clock frames.
	// values below 1 produce a slow motion view of the beam sweep, useful
	// for demonstration
	FPSDivisor float64

	// split-screen comparison against the unprocessed source frame
	Split                bool
	SplitPoint           float64
	SplitBorderWidth     int
	SplitBrightnessMatch bool
}

// NewConfig returns a Config with default values for a 240Hz display
// simulating a 60Hz CRT.
func NewConfig() Config {
	return Config{
		FramesPerHz:          4,
		GainVsBlur:           0.7,
		Gamma:                colour.DefaultGamma,
		ScanDirection:        ScanTopToBottom,
		MotionSim:            true,
		MotionSpeed:          10,
		AntiRetention:        true,
		AntiRetentionSlew:    0.001,
		FPSDivisor:           1,
		Split:                false,
		SplitPoint:           0.5,
		SplitBorderWidth:     2,
		SplitBrightnessMatch: true,
	}
}

// Validate checks the configuration for values that would make the cycle
// arithmetic undefined. Configurations are rejected here, at setup, rather
// than tested per pixel.
func (cfg Config) Validate() error {
	if cfg.FramesPerHz < 1 {
		return fmt.Errorf("frames per hz must be at least 1 (%.3f)", cfg.FramesPerHz)
	}
	if cfg.GainVsBlur <= 0 || cfg.GainVsBlur > 1 {
		return fmt.Errorf("gain vs blur must be in the range (0,1] (%.3f)", cfg.GainVsBlur)
	}
	if cfg.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive (%.3f)", cfg.Gamma)
	}
	if cfg.ScanDirection < ScanTopToBottom || cfg.ScanDirection > ScanRightToLeft {
		return fmt.Errorf("unknown scan direction (%d)", int(cfg.ScanDirection))
	}
	if cfg.MotionSpeed < 0 {
		return fmt.Errorf("motion speed must not be negative (%.3f)", cfg.MotionSpeed)
	}
	if cfg.AntiRetentionSlew < 0 {
		return fmt.Errorf("anti-retention slew must not be negative (%.5f)", cfg.AntiRetentionSlew)
	}
	if cfg.FPSDivisor <= 0 {
		return fmt.Errorf("fps divisor must be positive (%.3f)", cfg.FPSDivisor)
	}
	if cfg.SplitPoint < 0 || cfg.SplitPoint > 1 {
		return fmt.Errorf("split point must be in the range [0,1] (%.3f)", cfg.SplitPoint)
	}
	if cfg.SplitBorderWidth < 0 {
		return fmt.Errorf("split border width must not be negative (%d)", cfg.SplitBorderWidth)
	}
	return nil
}

// effectiveFramesPerHz is the frames-per-Hz value actually used by the cycle
// arithmetic. the anti-retention slew is only needed when the configured
// value is an even integer
func (cfg Config) effectiveFramesPerHz() float64 {
	f := cfg.FramesPerHz
	if cfg.AntiRetention && f == math.Floor(f) && int(f)%2 == 0 {
		f += cfg.AntiRetentionSlew
	}
	return f
}
