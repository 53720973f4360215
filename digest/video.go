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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video is a chained fingerprint of a sequence of frames.
type Video struct {
	digest   [sha1.Size]byte
	buf      []byte
	frameNum int
}

func (dig *Video) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// FrameNum is the number passed to the most recent call to Process().
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// ResetDigest forgets all previously processed frames.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// Process folds the pixels of the frame into the digest. Chaining is done by
// hashing the previous digest value alongside the new frame's pixels.
func (dig *Video) Process(frameNum int, img *image.RGBA) {
	l := sha1.Size + len(img.Pix)
	if len(dig.buf) != l {
		dig.buf = make([]byte, l)
	}

	copy(dig.buf, dig.digest[:])
	copy(dig.buf[sha1.Size:], img.Pix)

	dig.digest = sha1.Sum(dig.buf)
	dig.frameNum = frameNum
}
