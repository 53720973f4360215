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

package testpattern_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/crtbeam/test"
	"github.com/jetsetilly/crtbeam/testpattern"
)

func TestGenerator(t *testing.T) {
	_, err := testpattern.NewGenerator(0, 100)
	test.ExpectedFailure(t, err)

	gen, err := testpattern.NewGenerator(320, 240)
	test.ExpectedSuccess(t, err)

	w, h := gen.Size()
	test.Equate(t, w, 320)
	test.Equate(t, h, 240)

	img := gen.Frame(0)
	test.Equate(t, img.Bounds().Dx(), 320)
	test.Equate(t, img.Bounds().Dy(), 240)
}

func TestDeterminism(t *testing.T) {
	gen, err := testpattern.NewGenerator(320, 240)
	test.ExpectedSuccess(t, err)

	a := gen.Frame(99)
	b := gen.Frame(99)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("frames for the same frame number should be identical")
	}
}

func TestMotion(t *testing.T) {
	gen, err := testpattern.NewGenerator(320, 240)
	test.ExpectedSuccess(t, err)

	a := gen.Frame(0)
	b := gen.Frame(1)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("consecutive frames should differ")
	}
}
