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
	"image"

	"github.com/jetsetilly/crtbeam/digest"
)

// Headless is a Screen that discards the drawn image. It keeps a running
// digest of everything drawn to it so two runs can be compared without a
// display.
type Headless struct {
	dgst   digest.Video
	frames int
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless() *Headless {
	return &Headless{}
}

// Draw implements the Screen interface.
func (scr *Headless) Draw(img *image.RGBA) error {
	scr.dgst.Process(scr.frames, img)
	scr.frames++
	return nil
}

// Service implements the Screen interface.
func (scr *Headless) Service() bool {
	return true
}

// Destroy implements the Screen interface.
func (scr *Headless) Destroy() {
}

// Hash of all frames drawn so far.
func (scr *Headless) Hash() string {
	return scr.dgst.String()
}

// NumFrames drawn so far.
func (scr *Headless) NumFrames() int {
	return scr.frames
}
