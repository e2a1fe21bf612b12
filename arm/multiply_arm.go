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

// armMultiply implements MUL and MLA (bit 21 selects accumulate). Neither
// form may target Rd=15; a host that feeds one such an opcode gets
// whatever this core happens to do with it, since the manual calls the
// combination unpredictable rather than defining a trap for it.
func armMultiply(cpu *CPU, opcode uint32) {
	accumulate := opcode&(1<<21) != 0
	s := opcode&(1<<20) != 0
	rd := int((opcode >> 16) & 0xf)
	rn := int((opcode >> 12) & 0xf)
	rs := int((opcode >> 8) & 0xf)
	rm := int(opcode & 0xf)

	rsVal := cpu.Register(rs)
	result := cpu.Register(rm) * rsVal
	if accumulate {
		result += cpu.Register(rn)
	}

	internal := multiplyCycles(rsVal)
	if accumulate {
		internal++
	}
	for i := 0; i < internal; i++ {
		cpu.Icycle()
	}

	cpu.SetRegister(rd, result)
	if s {
		cpu.state.cpsr.setNZ(result)
	}
}

// armMultiplyLong implements UMULL, UMLAL, SMULL and SMLAL (bit 22 selects
// signed, bit 21 selects accumulate).
func armMultiplyLong(cpu *CPU, opcode uint32) {
	signed := opcode&(1<<22) != 0
	accumulate := opcode&(1<<21) != 0
	s := opcode&(1<<20) != 0
	rdHi := int((opcode >> 16) & 0xf)
	rdLo := int((opcode >> 12) & 0xf)
	rs := int((opcode >> 8) & 0xf)
	rm := int(opcode & 0xf)

	rsVal := cpu.Register(rs)
	rmVal := cpu.Register(rm)

	var product uint64
	if signed {
		product = uint64(int64(int32(rmVal)) * int64(int32(rsVal)))
	} else {
		product = uint64(rmVal) * uint64(rsVal)
	}

	if accumulate {
		product += uint64(cpu.Register(rdHi))<<32 | uint64(cpu.Register(rdLo))
	}

	internal := multiplyCycles(rsVal) + 1
	if accumulate {
		internal++
	}
	for i := 0; i < internal; i++ {
		cpu.Icycle()
	}

	cpu.SetRegister(rdLo, uint32(product))
	cpu.SetRegister(rdHi, uint32(product>>32))

	if s {
		cpu.state.cpsr.SetN(product&0x8000000000000000 != 0)
		cpu.state.cpsr.SetZ(product == 0)
	}
}

// armSwap implements SWP and SWPB: a read of [Rn] followed by a write of
// Rm to the same address, with Rd receiving the value that was read. The
// two bus accesses are indivisible from the point of view of this core's
// Memory contract; no other component can observe the address between
// them.
func armSwap(cpu *CPU, opcode uint32) {
	byteAccess := opcode&(1<<22) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)
	rm := int(opcode & 0xf)

	addr := cpu.Register(rn)
	newVal := cpu.Register(rm)

	var cycles uint64
	var oldVal uint32
	if byteAccess {
		oldVal = cpu.mem.LoadU8(addr, &cycles)
		cpu.mem.Store8(addr, uint8(newVal), &cycles)
	} else {
		oldVal = cpu.mem.Load32(addr, &cycles)
		cpu.mem.Store32(addr, newVal, &cycles)
	}
	cpu.state.cycles += cycles

	cpu.Icycle()
	cpu.Ncycle(2)

	cpu.SetRegister(rd, oldVal)
}
