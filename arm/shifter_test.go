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

import (
	"testing"

	"github.com/nightjar-systems/arm7tdmi/test"
)

// LSL #0 is a pure no-op: the operand is returned unchanged and carry-out
// is whatever C already was, not derived from the (absent) shift.
func TestShiftImmediateLSLZeroLeavesCarryUnchanged(t *testing.T) {
	value, carry := shiftImmediate(shiftLSL, 0xdeadbeef, 0, true)
	test.ExpectEquality(t, value, uint32(0xdeadbeef))
	test.ExpectEquality(t, carry, true)

	value, carry = shiftImmediate(shiftLSL, 0xdeadbeef, 0, false)
	test.ExpectEquality(t, value, uint32(0xdeadbeef))
	test.ExpectEquality(t, carry, false)
}

// LSR #0 (immediate encoding) means shift-by-32: the operand becomes zero
// and carry-out is the operand's original bit 31.
func TestShiftImmediateLSRZeroIsShiftBy32(t *testing.T) {
	value, carry := shiftImmediate(shiftLSR, 0x80000000, 0, false)
	test.ExpectEquality(t, value, uint32(0))
	test.ExpectEquality(t, carry, true)

	value, carry = shiftImmediate(shiftLSR, 0x7fffffff, 0, false)
	test.ExpectEquality(t, value, uint32(0))
	test.ExpectEquality(t, carry, false)
}

// ASR #0 (immediate encoding) is the one documented architectural
// deviation this core carries forward: the operand collapses to the sign
// bit itself (0 or 1), not the manual's 0/0xFFFFFFFF, though the carry-out
// still matches the sign bit either way.
func TestShiftImmediateASRZeroMatchesKnownDeviation(t *testing.T) {
	value, carry := shiftImmediate(shiftASR, 0x80000000, 0, false)
	test.ExpectEquality(t, value, uint32(1))
	test.ExpectEquality(t, carry, true)

	value, carry = shiftImmediate(shiftASR, 0x7fffffff, 0, false)
	test.ExpectEquality(t, value, uint32(0))
	test.ExpectEquality(t, carry, false)
}

// ROR with immediate amount 0 performs RRX: carry rotates in as the new
// bit 31, and the old bit 0 becomes the new carry-out.
func TestShiftImmediateRORZeroIsRRX(t *testing.T) {
	value, carry := shiftImmediate(shiftROR, 0x00000001, 0, true)
	test.ExpectEquality(t, value, uint32(0x80000000))
	test.ExpectEquality(t, carry, true)

	value, carry = shiftImmediate(shiftROR, 0x00000002, 0, false)
	test.ExpectEquality(t, value, uint32(0x00000001))
	test.ExpectEquality(t, carry, false)
}

// A register-controlled shift amount of Rs&0xFF = 0 is always a true
// no-op, for every shift kind, unlike the immediate encoding's shift-by-32
// special cases.
func TestShiftRegisterControlledZeroAmountIsNoOp(t *testing.T) {
	for _, kind := range []uint32{shiftLSL, shiftLSR, shiftASR, shiftROR} {
		value, carry := shiftRegisterControlled(kind, 0xcafef00d, 0, true)
		test.ExpectEquality(t, value, uint32(0xcafef00d))
		test.ExpectEquality(t, carry, true)
	}
}

// Register-controlled ASR by 32 or more sign-extends fully, unlike the
// immediate form's shift-by-32 encoding.
func TestShiftRegisterControlledASRSaturatesToSignExtension(t *testing.T) {
	value, carry := shiftRegisterControlled(shiftASR, 0x80000000, 40, false)
	test.ExpectEquality(t, value, uint32(0xffffffff))
	test.ExpectEquality(t, carry, true)

	value, carry = shiftRegisterControlled(shiftASR, 0x7fffffff, 255, false)
	test.ExpectEquality(t, value, uint32(0))
	test.ExpectEquality(t, carry, false)
}

// PC read during a register-controlled shift yields PC+4, i.e. 12 bytes
// ahead of the executing ARM instruction's address (PC is already 8 bytes
// ahead by the ordinary pipeline convention).
func TestOperand2RegisterControlledShiftReadsPCPlusFour(t *testing.T) {
	cpu, _, _ := newBareCPU(t)
	cpu.SetRegister(15, 0x1000)
	cpu.SetRegister(1, 1) // Rs: shift amount 1, so Rm's value is observable

	// MOV r0, r15, LSL r1 -- operand2's register-form path with Rm=PC.
	opcode := uint32(0xE1A0011F)
	value, _ := operand2(cpu, opcode)

	test.ExpectEquality(t, value, uint32(0x1000+4)<<1)
}
