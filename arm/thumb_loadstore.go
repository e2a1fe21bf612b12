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

// thumbPCRelativeLoad implements format 6: a word load from PC (forced
// word-aligned, as THUMB's PC always reads two halfwords ahead) plus an
// unsigned 10-bit byte offset.
func thumbPCRelativeLoad(cpu *CPU, opcode uint16) {
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	base := cpu.Register(rPC) &^ 3
	addr := base + word8*4

	var cycles uint64
	value := cpu.mem.Load32(addr, &cycles)
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
	cpu.Scycle(1)

	cpu.SetRegister(rd, value)
}

// thumbLoadStoreReg implements format 7: word/byte load or store with a
// register offset.
func thumbLoadStoreReg(cpu *CPU, opcode uint16) {
	load := opcode&(1<<11) != 0
	byteAccess := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.Register(rb) + cpu.Register(ro)
	var cycles uint64

	if load {
		var value uint32
		if byteAccess {
			value = cpu.mem.LoadU8(addr, &cycles)
		} else {
			value = cpu.mem.Load32(addr, &cycles)
		}
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		cpu.SetRegister(rd, value)
		cpu.Scycle(1)
		return
	}

	value := cpu.Register(rd)
	if byteAccess {
		cpu.mem.Store8(addr, uint8(value), &cycles)
	} else {
		cpu.mem.Store32(addr, value, &cycles)
	}
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
}

// thumbLoadStoreSigned implements format 8: STRH, and the sign/zero
// extending halfword and byte loads LDRH, LDRSB and LDRSH, all with a
// register offset.
func thumbLoadStoreSigned(cpu *CPU, opcode uint16) {
	signed := opcode&(1<<11) != 0
	halfword := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.Register(rb) + cpu.Register(ro)
	var cycles uint64

	if !signed && !halfword {
		// STRH is the only store encoding in this family.
		value := cpu.Register(rd)
		cpu.mem.Store16(addr, uint16(value), &cycles)
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		return
	}

	var value uint32
	switch {
	case signed && halfword:
		value = uint32(cpu.mem.Load16(addr, &cycles))
	case signed:
		value = uint32(cpu.mem.Load8(addr, &cycles))
	default:
		value = cpu.mem.LoadU16(addr, &cycles)
	}
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
	cpu.SetRegister(rd, value)
	cpu.Scycle(1)
}

// thumbLoadStoreImmediate implements format 9: word/byte load or store
// with a 5-bit immediate offset, scaled by 4 for the word form.
func thumbLoadStoreImmediate(cpu *CPU, opcode uint16) {
	byteAccess := opcode&(1<<12) != 0
	load := opcode&(1<<11) != 0
	offset5 := uint32(opcode>>6) & 0x1f
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	offset := offset5
	if !byteAccess {
		offset *= 4
	}
	addr := cpu.Register(rb) + offset
	var cycles uint64

	if load {
		var value uint32
		if byteAccess {
			value = cpu.mem.LoadU8(addr, &cycles)
		} else {
			value = cpu.mem.Load32(addr, &cycles)
		}
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		cpu.SetRegister(rd, value)
		cpu.Scycle(1)
		return
	}

	value := cpu.Register(rd)
	if byteAccess {
		cpu.mem.Store8(addr, uint8(value), &cycles)
	} else {
		cpu.mem.Store32(addr, value, &cycles)
	}
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
}

// thumbLoadStoreHalfword implements format 10: halfword load or store
// with a 5-bit immediate offset, scaled by 2.
func thumbLoadStoreHalfword(cpu *CPU, opcode uint16) {
	load := opcode&(1<<11) != 0
	offset5 := uint32(opcode>>6) & 0x1f
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := cpu.Register(rb) + offset5*2
	var cycles uint64

	if load {
		value := cpu.mem.LoadU16(addr, &cycles)
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		cpu.SetRegister(rd, value)
		cpu.Scycle(1)
		return
	}

	value := cpu.Register(rd)
	cpu.mem.Store16(addr, uint16(value), &cycles)
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
}

// thumbSPRelative implements format 11: word load or store relative to
// the stack pointer, with a 10-bit byte offset.
func thumbSPRelative(cpu *CPU, opcode uint16) {
	load := opcode&(1<<11) != 0
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	addr := cpu.Register(rSP) + word8*4
	var cycles uint64

	if load {
		value := cpu.mem.Load32(addr, &cycles)
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		cpu.SetRegister(rd, value)
		cpu.Scycle(1)
		return
	}

	value := cpu.Register(rd)
	cpu.mem.Store32(addr, value, &cycles)
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
}
