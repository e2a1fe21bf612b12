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

// thumbLoadAddress implements format 12: Rd = (PC or SP) + a 10-bit byte
// offset. It never touches memory.
func thumbLoadAddress(cpu *CPU, opcode uint16) {
	fromSP := opcode&(1<<11) != 0
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	base := cpu.Register(rPC) &^ 3
	if fromSP {
		base = cpu.Register(rSP)
	}

	cpu.SetRegister(rd, base+word8*4)
}

// thumbAddSPOffset implements format 13: adjust SP by a signed 7-bit value
// scaled by 4.
func thumbAddSPOffset(cpu *CPU, opcode uint16) {
	negative := opcode&(1<<7) != 0
	word7 := uint32(opcode&0x7f) * 4

	sp := cpu.Register(rSP)
	if negative {
		cpu.SetRegister(rSP, sp-word7)
	} else {
		cpu.SetRegister(rSP, sp+word7)
	}
}

// thumbPushPop implements format 14. PUSH is a full-descending-stack
// store (STMDB with writeback); POP is the matching full-descending-stack
// load (LDMIA with writeback). The R bit adds LR to a PUSH's list or PC to a POP's
// list; POP{PC} is a plain branch within the current instruction set,
// unlike BX, since THUMB's PUSH/POP never changes execution state.
func thumbPushPop(cpu *CPU, opcode uint16) {
	load := opcode&(1<<11) != 0
	includeSpecial := opcode&(1<<8) != 0
	rlist := opcode & 0xff

	mask := uint16(rlist)
	if includeSpecial {
		if load {
			mask |= 1 << rPC
		} else {
			mask |= 1 << rLR
		}
	}

	base := cpu.Register(rSP)
	var cycles uint64

	if load {
		var pcLoaded bool
		var pcValue uint32
		count := 0
		finalAddr := cpu.mem.LoadMultiple(base, mask, IA, &cycles, func(reg int, value uint32) {
			count++
			if reg == rPC {
				pcLoaded = true
				pcValue = value
				return
			}
			cpu.SetRegister(reg, value)
		})
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		if count > 1 {
			cpu.Scycle(uint64(count - 1))
		}
		cpu.SetRegister(rSP, finalAddr)
		if pcLoaded {
			cpu.writePC(pcValue)
		}
		return
	}

	count := 0
	finalAddr := cpu.mem.StoreMultiple(base, mask, DB, &cycles, func(reg int) uint32 {
		count++
		return cpu.Register(reg)
	})
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
	if count > 1 {
		cpu.Scycle(uint64(count - 1))
	}
	cpu.SetRegister(rSP, finalAddr)
}

// thumbMultipleLoadStore implements format 15: LDMIA!/STMIA! against a
// low register. When Rb is itself in the load list, the loaded value
// stands and the address writeback is suppressed.
func thumbMultipleLoadStore(cpu *CPU, opcode uint16) {
	load := opcode&(1<<11) != 0
	rb := int((opcode >> 8) & 0x7)
	mask := uint16(opcode & 0xff)

	base := cpu.Register(rb)
	var cycles uint64
	count := 0

	if load {
		rbInList := mask&(1<<uint(rb)) != 0
		finalAddr := cpu.mem.LoadMultiple(base, mask, IA, &cycles, func(reg int, value uint32) {
			count++
			cpu.SetRegister(reg, value)
		})
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		if count > 1 {
			cpu.Scycle(uint64(count - 1))
		}
		if !rbInList {
			cpu.SetRegister(rb, finalAddr)
		}
		return
	}

	finalAddr := cpu.mem.StoreMultiple(base, mask, IA, &cycles, func(reg int) uint32 {
		count++
		return cpu.Register(reg)
	})
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
	if count > 1 {
		cpu.Scycle(uint64(count - 1))
	}
	cpu.SetRegister(rb, finalAddr)
}
