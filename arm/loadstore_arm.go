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

// armSingleDataTransfer implements LDR, STR, LDRB and STRB (bit 22 selects
// byte access, bit 20 selects load over store). Pre/post-indexing and the
// writeback bit follow addressing mode 2 exactly as addressMode2Offset and
// applyOffset compute it.
//
// When P=0 (post-indexed) and W=1 the architecture repurposes W to force a
// user-mode access (LDRT/STRT) rather than disabling writeback, which is
// unconditional in post-indexed form; this core has no MMU or memory
// protection behind its Memory contract, so the force-user-mode request has
// no observable effect beyond the writeback it would have performed anyway.
func armSingleDataTransfer(cpu *CPU, opcode uint32) {
	preIndexed := opcode&(1<<24) != 0
	byteAccess := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	offset := addressMode2Offset(cpu, opcode)
	base := cpu.Register(rn)

	addr := base
	if preIndexed {
		addr = applyOffset(base, offset, opcode)
	}

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

		writeBackBase(cpu, rn, base, offset, opcode, preIndexed, writeback, addr)

		if rd == rPC {
			cpu.writePC(value)
		} else {
			cpu.SetRegister(rd, value)
			cpu.Scycle(1)
		}
		return
	}

	value := cpu.Register(rd)
	if rd == rPC {
		// The pipeline holds PC eight bytes ahead of the executing
		// instruction; storing it adds one more word for the
		// instruction that has already been prefetched past it.
		value += 4
	}
	if byteAccess {
		cpu.mem.Store8(addr, uint8(value), &cycles)
	} else {
		cpu.mem.Store32(addr, value, &cycles)
	}
	cpu.state.cycles += cycles
	cpu.Ncycle(1)

	writeBackBase(cpu, rn, base, offset, opcode, preIndexed, writeback, addr)
}

// writeBackBase applies addressing mode 2/3's base-register update rule:
// post-indexed forms always write back the offset address; pre-indexed
// forms only do so when W is set.
func writeBackBase(cpu *CPU, rn int, base, offset, opcode uint32, preIndexed, writeback bool, addr uint32) {
	if !preIndexed {
		cpu.SetRegister(rn, applyOffset(base, offset, opcode))
	} else if writeback {
		cpu.SetRegister(rn, addr)
	}
}

// armHalfwordTransfer implements LDRH, STRH, LDRSB and LDRSH, selected by
// bits 6:5 of the opcode (S, H). There is no signed store: the only store
// encoding in this family is STRH.
func armHalfwordTransfer(cpu *CPU, opcode uint32) {
	preIndexed := opcode&(1<<24) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0
	signed := opcode&(1<<6) != 0
	halfword := opcode&(1<<5) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	offset := addressMode3Offset(cpu, opcode)
	base := cpu.Register(rn)

	addr := base
	if preIndexed {
		addr = applyOffset(base, offset, opcode)
	}

	var cycles uint64

	if load {
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

		writeBackBase(cpu, rn, base, offset, opcode, preIndexed, writeback, addr)

		if rd == rPC {
			cpu.writePC(value)
		} else {
			cpu.SetRegister(rd, value)
			cpu.Scycle(1)
		}
		return
	}

	value := cpu.Register(rd)
	cpu.mem.Store16(addr, uint16(value), &cycles)
	cpu.state.cycles += cycles
	cpu.Ncycle(1)

	writeBackBase(cpu, rn, base, offset, opcode, preIndexed, writeback, addr)
}
