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

// addressMode2Offset computes the unsigned offset magnitude for a
// word/byte single data-transfer instruction (LDR/STR/LDRB/STRB). Bit 25
// of the opcode selects between a 12-bit immediate and an Rm shifted by an
// immediate amount; a register-specified shift amount is not part of this
// addressing mode, unlike the general data-processing operand 2.
func addressMode2Offset(cpu *CPU, opcode uint32) uint32 {
	if opcode&(1<<25) == 0 {
		return opcode & 0xfff
	}

	rm := int(opcode & 0xf)
	kind := (opcode >> 5) & 0x3
	amount := (opcode >> 7) & 0x1f
	value, _ := shiftImmediate(kind, cpu.Register(rm), amount, cpu.state.cpsr.C())
	return value
}

// addressMode3Offset computes the unsigned offset magnitude for a
// halfword/signed-byte transfer instruction. Bit 22 selects between an
// 8-bit split immediate (bits 11:8 and 3:0) and a bare Rm with no shift.
func addressMode3Offset(cpu *CPU, opcode uint32) uint32 {
	if opcode&(1<<22) != 0 {
		return ((opcode >> 4) & 0xf0) | (opcode & 0xf)
	}
	rm := int(opcode & 0xf)
	return cpu.Register(rm)
}

// applyOffset adds or subtracts offset from base depending on the U bit
// (bit 23: 1 = up/add, 0 = down/subtract) shared by both addressing modes.
func applyOffset(base, offset uint32, opcode uint32) uint32 {
	if opcode&(1<<23) != 0 {
		return base + offset
	}
	return base - offset
}
