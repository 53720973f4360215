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
)

// Screen implementations present rendered sub-frames to the user.
type Screen interface {
	// Draw the image to the screen. The image must be the size the screen
	// was created with.
	Draw(img *image.RGBA) error

	// Service pending user input. Returns false when the user has asked for
	// the program to end.
	Service() bool

	// Destroy any resources held by the screen.
	Destroy()
}
