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

package screen

import (
	"fmt"
	"image"

	"github.com/jetsetilly/crtbeam/beam"
	"github.com/jetsetilly/crtbeam/frames"
	"github.com/jetsetilly/crtbeam/performance/limiter"
	"github.com/jetsetilly/crtbeam/testpattern"
)

// screens that support runtime toggling of the split-screen comparison
// report the keypress through this interface
type splitToggler interface {
	toggledSplit() bool
}

// Run drives the render loop. A new source frame is captured whenever the
// beam cycle advances, every sub-frame is rendered through the simulator and
// the result drawn to the screen.
//
// A nil limiter runs the loop flat out. The cont function is called once per
// sub-frame and ends the loop by returning false; a nil cont runs until the
// screen reports a quit request.
func Run(scr Screen, cfg beam.Config, gen *testpattern.Generator, lim *limiter.FpsLimiter, cont func(frameNum int) bool) error {
	width, height := gen.Size()

	hist, err := frames.NewHistory(width, height)
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	sim, err := beam.NewSimulator(cfg, hist)
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	lastCycle := -1

	for frameNum := 0; ; frameNum++ {
		if cont != nil && !cont(frameNum) {
			return nil
		}

		// capture any source frames the beam cycle has advanced over. on the
		// first pass this captures the very first source frame
		cycle := sim.BeamCycle(frameNum)
		for c := lastCycle + 1; c <= cycle; c++ {
			hist.Capture(c, gen.Frame(c))
		}
		if cycle > lastCycle {
			lastCycle = cycle
		}

		sim.RenderFrame(img, frameNum, 0)

		if err := scr.Draw(img); err != nil {
			return fmt.Errorf("screen: %w", err)
		}

		if !scr.Service() {
			return nil
		}

		if tgl, ok := scr.(splitToggler); ok && tgl.toggledSplit() {
			cfg.Split = !cfg.Split
			sim, err = beam.NewSimulator(cfg, hist)
			if err != nil {
				return fmt.Errorf("screen: %w", err)
			}
		}

		if lim != nil {
			lim.Wait()
		}
	}
}
