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
	"image"
	"runtime"
	"sync"
)

// RenderFrame evaluates every pixel of the sub-frame into img, dividing the
// image into horizontal bands rendered by concurrent workers. Because each
// pixel is independent the choice of partition has no effect on the result;
// a worker count of zero or less uses one worker per CPU.
func (sim *Simulator) RenderFrame(img *image.RGBA, frameIndex int, workers int) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	b := img.Bounds()
	width := b.Dx()
	height := b.Dy()

	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < height; start += band {
		end := start + band
		if end > height {
			end = height
		}

		wg.Add(1)
		go func(start int, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				i := img.PixOffset(b.Min.X, b.Min.Y+y)
				for x := 0; x < width; x++ {
					r, g, bl, a := sim.Pixel(x, y, width, height, frameIndex).RGBA8()
					img.Pix[i] = r
					img.Pix[i+1] = g
					img.Pix[i+2] = bl
					img.Pix[i+3] = a
					i += 4
				}
			}
		}(start, end)
	}
	wg.Wait()
}
