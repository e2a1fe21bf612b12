// This file is part of arm7tdmi.
//
// arm7tdmi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// arm7tdmi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with arm7tdmi.  If not, see <https://www.gnu.org/licenses/>.

// Package test collects small test helpers shared by this module's test
// suites, so that cycle and flag assertions read the same way across every
// _test.go file instead of each reinventing t.Fatalf boilerplate.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectFailure fails the test if result indicates success. result may be a
// bool (false means failure) or an error (non-nil means failure).
func ExpectFailure(t *testing.T, result interface{}) {
	t.Helper()
	switch r := result.(type) {
	case bool:
		if r {
			t.Errorf("expected failure but got success")
		}
	case error:
		if r == nil {
			t.Errorf("expected failure but got success")
		}
	default:
		t.Errorf("unsupported type given to ExpectFailure: %T", result)
	}
}

// ExpectSuccess fails the test if result indicates failure. result may be a
// bool (true means success), an error (nil means success), or nil.
func ExpectSuccess(t *testing.T, result interface{}) {
	t.Helper()
	switch r := result.(type) {
	case bool:
		if !r {
			t.Errorf("expected success but got failure")
		}
	case error:
		if r != nil {
			t.Errorf("expected success but got failure: %v", r)
		}
	case nil:
		// success
	default:
		t.Errorf("unsupported type given to ExpectSuccess: %T", result)
	}
}

// ExpectEquality fails the test if got and want are not equal.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected value: got %v, want %v", got, want)
	}
}

// Equate is a historical alias for ExpectEquality, retained because earlier
// tests in this package were written against it before ExpectEquality was
// introduced.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	ExpectEquality(t, got, want)
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Errorf("unexpected equality: got %v, want something other than %v", got, want)
	}
}

// ExpectApproximate fails the test if got and want differ by more than
// tolerance.
func ExpectApproximate(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("unexpected value: got %v, want %v (+/- %v)", got, want, tolerance)
	}
}
