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

package digest_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/crtbeam/digest"
	"github.com/jetsetilly/crtbeam/test"
)

func TestChainedDigest(t *testing.T) {
	imgA := image.NewRGBA(image.Rect(0, 0, 4, 4))
	imgB := image.NewRGBA(image.Rect(0, 0, 4, 4))
	imgB.Pix[0] = 255

	var dig digest.Video
	var cmp digest.Video

	// same sequence of frames gives the same digest
	dig.Process(0, imgA)
	dig.Process(1, imgB)
	cmp.Process(0, imgA)
	cmp.Process(1, imgB)
	test.Equate(t, dig.String(), cmp.String())
	test.Equate(t, dig.FrameNum(), 1)

	// order matters
	cmp.ResetDigest()
	cmp.Process(0, imgB)
	cmp.Process(1, imgA)
	if dig.String() == cmp.String() {
		t.Errorf("digest should depend on frame order")
	}

	// reset returns to the zero digest
	dig.ResetDigest()
	cmp.ResetDigest()
	test.Equate(t, dig.String(), cmp.String())
}
