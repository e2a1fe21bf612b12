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

package test

import "fmt"

// CappedWriter is an io.Writer with a fixed-size buffer. Once full, further
// bytes are silently discarded rather than overwriting earlier content,
// unlike RingWriter.
type CappedWriter struct {
	buf   []byte
	limit int
}

// NewCappedWriter creates a CappedWriter with the given capacity. It is an
// error to request a non-positive capacity.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("capped writer: limit must be greater than zero")
	}
	return &CappedWriter{limit: limit}, nil
}

// Write implements io.Writer. It never returns an error; bytes beyond the
// buffer's capacity are dropped.
func (c *CappedWriter) Write(p []byte) (int, error) {
	remaining := c.limit - len(c.buf)
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		p = p[:remaining]
	}
	c.buf = append(c.buf, p...)
	return len(p), nil
}

// String returns the buffer's current content.
func (c *CappedWriter) String() string {
	return string(c.buf)
}

// Reset empties the buffer.
func (c *CappedWriter) Reset() {
	c.buf = c.buf[:0]
}
