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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/crtbeam/beam"
	"github.com/jetsetilly/crtbeam/screen"
	"github.com/jetsetilly/crtbeam/testpattern"
)

// Check is a very rough and ready measurement of the simulator's performance.
// The render loop runs flat out for the period given by runTime and the
// achieved rate is written to output, compared against refreshRate.
//
// The display argument selects a real SDL screen for the run. This measures
// the texture upload and present alongside the simulation itself, so it is
// the more honest number, but it requires a display to be attached.
func Check(output io.Writer, profile bool, display bool, width int, height int, scale float32, cfg beam.Config, refreshRate float64, runTime string) error {
	var scr screen.Screen
	var err error

	if display {
		scr, err = screen.NewSDL(width, height, scale)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	} else {
		scr = screen.NewHeadless()
	}
	defer scr.Destroy()

	gen, err := testpattern.NewGenerator(width, height)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		// trigger that expires when the duration has elapsed
		timesUp := make(chan bool)
		timer := time.AfterFunc(duration, func() {
			close(timesUp)
		})
		defer timer.Stop()

		return screen.Run(scr, cfg, gen, nil, func(frameNum int) bool {
			select {
			case <-timesUp:
				return false
			default:
			}
			numFrames = frameNum
			return true
		})
	})
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(numFrames, duration.Seconds(), refreshRate)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return memProfile(profile, "mem.profile")
}
