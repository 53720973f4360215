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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/crtbeam/beam"
	"github.com/jetsetilly/crtbeam/performance"
	"github.com/jetsetilly/crtbeam/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(240, 1.0, 240)
	test.EquateFloat(t, fps, 240, 1e-9)
	test.EquateFloat(t, accuracy, 100, 1e-9)

	fps, accuracy = performance.CalcFPS(120, 1.0, 240)
	test.EquateFloat(t, fps, 120, 1e-9)
	test.EquateFloat(t, accuracy, 50, 1e-9)

	fps, accuracy = performance.CalcFPS(600, 2.5, 240)
	test.EquateFloat(t, fps, 240, 1e-9)
	test.EquateFloat(t, accuracy, 100, 1e-9)
}

func TestCheck(t *testing.T) {
	w := &strings.Builder{}
	err := performance.Check(w, false, false, 64, 48, 1.0, beam.NewConfig(), 240, "250ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(w.String(), "fps") {
		t.Errorf("performance check should report an fps figure (%s)", w.String())
	}
}

func TestCheckBadDuration(t *testing.T) {
	w := &strings.Builder{}
	err := performance.Check(w, false, false, 64, 48, 1.0, beam.NewConfig(), 240, "not a duration")
	test.ExpectedFailure(t, err)
}
