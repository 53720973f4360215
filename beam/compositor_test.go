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
	"math"
	"testing"

	"github.com/jetsetilly/crtbeam/colour"
	"github.com/jetsetilly/crtbeam/test"
)

// a simulator with deterministic cycle arithmetic. anti-retention and motion
// simulation perturb results by design so they are off for arithmetic tests
func arithmeticConfig() Config {
	cfg := NewConfig()
	cfg.AntiRetention = false
	cfg.MotionSim = false
	return cfg
}

func TestOverlapProperties(t *testing.T) {
	intervals := []struct {
		start  float64
		length float64
	}{
		{0, 1}, {0, 4}, {-4, 1.4}, {2.5, 0}, {3.9, 0.2}, {-1, 10}, {0.5, 0.5},
	}

	for _, a := range intervals {
		for _, b := range intervals {
			o := overlap(a.start, a.start+a.length, b.start, b.start+b.length)
			if o < 0 {
				t.Errorf("overlap is negative (%f)", o)
			}
			if o > math.Min(a.length, b.length) {
				t.Errorf("overlap (%f) exceeds shortest interval length (%f)", o, math.Min(a.length, b.length))
			}
		}
	}

	// hand picked values
	test.EquateFloat(t, overlap(0, 1.4, 0, 1), 1.0, 0)
	test.EquateFloat(t, overlap(0, 1.4, 1, 2), 0.4, 1e-12)
	test.EquateFloat(t, overlap(-4, -2.6, 0, 1), 0, 0)
	test.EquateFloat(t, overlap(4, 5.4, 0, 1), 0, 0)
}

func TestZeroBrightnessShortCircuit(t *testing.T) {
	sim, err := NewSimulator(arithmeticConfig(), uniformSource{col: colour.Black})
	test.ExpectedSuccess(t, err)

	for _, raster := range []float64{0, 0.25, 0.5, 0.75} {
		c := sim.composite(0.5, 0.5, raster, 10)
		test.EquateFloat(t, c.R, 0, 0)
		test.EquateFloat(t, c.G, 0, 0)
		test.EquateFloat(t, c.B, 0, 0)
	}
}

// the worked example: framesPerHz=4, gain=0.7, a uniform grey at linear
// value 0.5 constant across all history. at a pixel swept at the very start
// of the cycle the previous frame emits for 0.5*4*0.7 = 1.4 sub-frames
// starting at t=0. the beam window at rasterPos=0 is [0,1) so the exposure
// is exactly 1.0 in linear light
func TestGreyScenario(t *testing.T) {
	cfg := arithmeticConfig()
	cfg.FramesPerHz = 4
	cfg.GainVsBlur = 0.7

	crv := colour.NewCurve(cfg.Gamma)
	grey := crv.Encode(0.5)
	sim, err := NewSimulator(cfg, uniformSource{col: colour.RGB{R: grey, G: grey, B: grey}})
	test.ExpectedSuccess(t, err)

	// y=0 means tubePos=0 for the default top-to-bottom sweep
	c := sim.composite(0.5, 0, 0, 10)
	test.EquateFloat(t, c.R, 1.0, 1e-9)
	test.EquateFloat(t, c.G, 1.0, 1e-9)
	test.EquateFloat(t, c.B, 1.0, 1e-9)

	// a quarter cycle later the window is [1,2) and only the tail of the
	// previous frame's emission is captured
	c = sim.composite(0.5, 0, 0.25, 10)
	test.EquateFloat(t, c.R, crv.Encode(0.4), 1e-9)

	// half a cycle later the emission has decayed entirely
	c = sim.composite(0.5, 0, 0.5, 10)
	test.EquateFloat(t, c.R, 0, 1e-9)
}

// at full brightness and unity gain the emission intervals tile the cycle
// exactly. total energy over a full beam sweep is constant; only its
// temporal distribution shifts
func TestEnergyConservation(t *testing.T) {
	cfg := arithmeticConfig()
	cfg.FramesPerHz = 4
	cfg.GainVsBlur = 1

	crv := colour.NewCurve(cfg.Gamma)
	sim, err := NewSimulator(cfg, uniformSource{col: colour.RGB{R: 1, G: 1, B: 1}})
	test.ExpectedSuccess(t, err)

	for _, y := range []float64{0, 0.25, 0.5, 1} {
		var sum float64
		for _, raster := range []float64{0, 0.25, 0.5, 0.75} {
			c := sim.composite(0.5, y, raster, 10)
			sum += crv.Decode(c.R)
		}
		test.EquateFloat(t, sum, cfg.FramesPerHz, 1e-9)
	}
}

// swapping the scan direction and transposing the coordinate axis must give
// identical results
func TestDirectionInvariance(t *testing.T) {
	grey := colour.NewCurve(colour.DefaultGamma).Encode(0.3)
	src := uniformSource{col: colour.RGB{R: grey, G: grey, B: grey}}

	sims := make(map[Direction]*Simulator)
	for _, dir := range []Direction{ScanTopToBottom, ScanBottomToTop, ScanLeftToRight, ScanRightToLeft} {
		cfg := arithmeticConfig()
		cfg.ScanDirection = dir
		var err error
		sims[dir], err = NewSimulator(cfg, src)
		test.ExpectedSuccess(t, err)
	}

	coords := []float64{0, 0.2, 0.5, 0.8, 1}
	for _, x := range coords {
		for _, y := range coords {
			for _, raster := range []float64{0, 0.3, 0.75} {
				ref := sims[ScanTopToBottom].composite(x, y, raster, 10)

				c := sims[ScanBottomToTop].composite(x, 1-y, raster, 10)
				test.EquateFloat(t, c.R, ref.R, 1e-12)

				c = sims[ScanLeftToRight].composite(y, x, raster, 10)
				test.EquateFloat(t, c.R, ref.R, 1e-12)

				c = sims[ScanRightToLeft].composite(1-y, x, raster, 10)
				test.EquateFloat(t, c.R, ref.R, 1e-12)
			}
		}
	}
}
