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

package test

import (
	"math"
	"testing"
)

// Equate is used to test equality between one value and another. Both values
// must be of the same type.
//
// This is by no means a comprehensive comparison function. With a bit more
// work with the reflect package we could generalise the testing a lot more.
// As it is however, it's good enough.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case int:
		ev, ok := expectedValue.(int)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
		}

	case float64:
		ev, ok := expectedValue.(float64)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%f  - wanted %f)", v, v, ev)
		}

	case string:
		ev, ok := expectedValue.(string)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%s  - wanted %s)", v, v, ev)
		}

	case bool:
		ev, ok := expectedValue.(bool)
		if !ok {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
		if v != ev {
			t.Errorf("equation of type %T failed (%v  - wanted %v)", v, v, ev)
		}
	}
}

// EquateFloat compares two floating point values within a tolerance. A
// negative tolerance is treated as zero, meaning the comparison degenerates
// to strict equality.
func EquateFloat(t *testing.T, value, expectedValue, tolerance float64) {
	t.Helper()

	if tolerance < 0 {
		tolerance = 0
	}

	if math.IsNaN(value) || math.Abs(value-expectedValue) > tolerance {
		t.Errorf("float equation failed (%v - wanted %v +/- %v)", value, expectedValue, tolerance)
	}
}
