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

// FrameSource provides read access to the history of captured source frames.
// Implementations must return colours in the encoded space and must indicate
// with the ok value whether a frame is retained for the requested cycle.
//
// The frames.History type satisfies this interface.
type FrameSource interface {
	Bilinear(cycle int, x float64, y float64) (col colour.RGB, ok bool)
}

// the colour of the boundary between the two halves of the split-screen
// comparison
var splitBorderColour = colour.RGB{R: 0.5, G: 0.5, B: 0.5}

// Simulator evaluates the beam simulation for individual pixels. It holds
// only immutable configuration and a read-only frame source, so a single
// Simulator may be shared by any number of goroutines.
type Simulator struct {
	cfg Config

	// effective frames-per-Hz with any anti-retention slew applied. derived
	// once at construction
	fph float64

	curve colour.Curve
	src   FrameSource
}

// NewSimulator is the preferred method of initialisation for the Simulator
// type. The configuration is validated here; a Simulator never fails after
// construction.
func NewSimulator(cfg Config, src FrameSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("beam: no frame source")
	}

	return &Simulator{
		cfg:   cfg,
		fph:   cfg.effectiveFramesPerHz(),
		curve: colour.NewCurve(cfg.Gamma),
		src:   src,
	}, nil
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() Config {
	return sim.cfg
}

// effectiveFrame applies the fps divisor to the driver supplied frame index
func (sim *Simulator) effectiveFrame(frameIndex int) float64 {
	return math.Floor(float64(frameIndex) * sim.cfg.FPSDivisor)
}

// BeamCycle returns the simulated CRT refresh cycle that the sub-frame
// belongs to. The host should capture a new source frame into the history
// whenever this value advances.
func (sim *Simulator) BeamCycle(frameIndex int) int {
	return int(math.Floor(sim.effectiveFrame(frameIndex) / sim.fph))
}

// RasterPos returns the fractional position of the beam within the current
// cycle, in the range [0,1).
func (sim *Simulator) RasterPos(frameIndex int) float64 {
	return math.Mod(sim.effectiveFrame(frameIndex), sim.fph) / sim.fph
}

// Pixel returns the encoded colour of the pixel at (px,py) for the given
// sub-frame. This is the only function the host needs per pixel; it derives
// the raster position and beam cycle from the frame index and dispatches to
// the exposure compositor, or to the unprocessed reference image when the
// split-screen comparison is enabled and the pixel is beyond the split
// point.
func (sim *Simulator) Pixel(px int, py int, width int, height int, frameIndex int) colour.RGB {
	x := (float64(px) + 0.5) / float64(width)
	y := (float64(py) + 0.5) / float64(height)

	cycle := sim.BeamCycle(frameIndex)

	if sim.cfg.Split {
		split := sim.cfg.SplitPoint
		border := float64(sim.cfg.SplitBorderWidth) / float64(width)

		if math.Abs(x-split) < border {
			return splitBorderColour
		}

		if x > split {
			// the reference image is the current frame passed through
			// unsimulated. brightness matching applies the same gain as the
			// compositor, in linear space, so that the two halves are a fair
			// comparison
			col := sim.sample(x, y, cycle, cycle)
			if sim.cfg.SplitBrightnessMatch {
				col = sim.curve.EncodeRGB(sim.curve.DecodeRGB(col).Scale(sim.cfg.GainVsBlur))
			}
			return col
		}
	}

	return sim.composite(x, y, sim.RasterPos(frameIndex), cycle)
}
