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

package arm

import "strings"

// PSR is a program status register, packed into a single uint32 exactly as
// the hardware defines it. Explicit getters and setters pick bits apart
// rather than relying on a host's native bitfield layout, which is neither
// portable nor predictable.
type PSR uint32

const (
	psrBitN     = 31
	psrBitZ     = 30
	psrBitC     = 29
	psrBitV     = 28
	psrBitI     = 7
	psrBitF     = 6
	psrBitT     = 5
	psrModeMask = 0x1f
)

func bit(v PSR, n uint) bool {
	return v&(1<<n) != 0
}

func setBit(v PSR, n uint, on bool) PSR {
	if on {
		return v | (1 << n)
	}
	return v &^ (1 << n)
}

// N reports the negative flag.
func (p PSR) N() bool { return bit(p, psrBitN) }

// Z reports the zero flag.
func (p PSR) Z() bool { return bit(p, psrBitZ) }

// C reports the carry flag.
func (p PSR) C() bool { return bit(p, psrBitC) }

// V reports the overflow flag.
func (p PSR) V() bool { return bit(p, psrBitV) }

// IRQDisable reports the I bit (1 disables normal interrupts).
func (p PSR) IRQDisable() bool { return bit(p, psrBitI) }

// FIQDisable reports the F bit (1 disables fast interrupts).
func (p PSR) FIQDisable() bool { return bit(p, psrBitF) }

// thumb reports the T bit.
func (p PSR) thumb() bool { return bit(p, psrBitT) }

// mode returns the five-bit privilege-mode field.
func (p PSR) mode() PrivilegeMode { return PrivilegeMode(uint32(p) & psrModeMask) }

// SetN sets the negative flag.
func (p *PSR) SetN(v bool) { *p = setBit(*p, psrBitN, v) }

// SetZ sets the zero flag.
func (p *PSR) SetZ(v bool) { *p = setBit(*p, psrBitZ, v) }

// SetC sets the carry flag.
func (p *PSR) SetC(v bool) { *p = setBit(*p, psrBitC, v) }

// SetV sets the overflow flag.
func (p *PSR) SetV(v bool) { *p = setBit(*p, psrBitV, v) }

// SetIRQDisable sets the I bit.
func (p *PSR) SetIRQDisable(v bool) { *p = setBit(*p, psrBitI, v) }

// SetFIQDisable sets the F bit.
func (p *PSR) SetFIQDisable(v bool) { *p = setBit(*p, psrBitF, v) }

// setThumb sets the T bit.
func (p *PSR) setThumb(v bool) { *p = setBit(*p, psrBitT, v) }

// setMode overwrites the five-bit mode field, leaving every other bit
// untouched.
func (p *PSR) setMode(m PrivilegeMode) {
	*p = (*p &^ psrModeMask) | PSR(uint32(m)&psrModeMask)
}

// setNZ derives N and Z from a result value, the common case for every
// flag-setting data-processing opcode.
func (p *PSR) setNZ(result uint32) {
	p.SetN(result&0x80000000 != 0)
	p.SetZ(result == 0)
}

// addCarry is the architectural carry-out predicate for an addition of a
// and b (pre-carry-in operands already folded into a, b as needed).
func addCarry(a, b uint32) bool {
	return (uint64(a) + uint64(b)) > 0xffffffff
}

// addOverflow is the signed-overflow predicate for a + b = result.
func addOverflow(a, b, result uint32) bool {
	signA := a&0x80000000 != 0
	signB := b&0x80000000 != 0
	signR := result&0x80000000 != 0
	return signA == signB && signA != signR
}

// subCarry is the architectural "no borrow occurred" predicate: ARM defines
// carry as the inverse of borrow for subtraction, so C=1 means a >= b.
func subCarry(a, b uint32) bool {
	return a >= b
}

// subOverflow is the signed-overflow predicate for a - b = result.
func subOverflow(a, b, result uint32) bool {
	signA := a&0x80000000 != 0
	signB := b&0x80000000 != 0
	signR := result&0x80000000 != 0
	return signA != signB && signA != signR
}

func (p PSR) String() string {
	var s strings.Builder
	flag := func(set bool, c byte) {
		if set {
			s.WriteByte(c)
		} else {
			s.WriteByte(c - 'A' + 'a')
		}
	}
	flag(p.N(), 'N')
	flag(p.Z(), 'Z')
	flag(p.C(), 'C')
	flag(p.V(), 'V')
	flag(p.IRQDisable(), 'I')
	flag(p.FIQDisable(), 'F')
	flag(p.thumb(), 'T')
	s.WriteByte(' ')
	s.WriteString(p.mode().String())
	return s.String()
}
