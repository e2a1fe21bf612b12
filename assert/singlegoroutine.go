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

// Package assert provides debug-only invariant checks. None of it is on the
// hot path of a normal build; it exists for the benefit of hosts that want to
// catch a violation of the CPU's single-threaded contract during development.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID returns an identifier that is (a) different between goroutines
// and (b) consistent for a given goroutine. It should only ever be used for
// debugging or testing purposes; it is not a stable or documented Go feature.
func goroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleGoroutine tracks the identity of the first goroutine to call Check,
// and reports whether every subsequent call to Check came from that same
// goroutine. This is how a host can verify, in a debug build, that it is
// honouring the CPU core's "never call Step/RunLoop concurrently with
// itself" contract (the CPU keeps no locks and assumes single-threaded,
// cooperative use by one goroutine at a time).
type SingleGoroutine struct {
	id  uint64
	set bool
}

// Check records the calling goroutine on first use and returns false on any
// later call made from a different goroutine.
func (s *SingleGoroutine) Check() bool {
	id := goroutineID()
	if !s.set {
		s.id = id
		s.set = true
		return true
	}
	return s.id == id
}
