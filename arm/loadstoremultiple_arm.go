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

// armBlockDataTransfer implements LDM and STM in all four addressing
// forms. The S bit means one of two unrelated things depending on whether
// PC is in the register list on a load: with PC absent (or on a store),
// it forces every transferred register to its User/System-mode shadow,
// the idiom an exception handler uses to save or restore the interrupted
// mode's registers; with PC present on a load, it additionally restores
// CPSR from the current mode's SPSR, the architectural way to return from
// an exception. Any load of PC, S-bit or not, also interworks off bit 0
// of the loaded value the same way BX does, before the PC-write sequence
// discards that bit during alignment.
func armBlockDataTransfer(cpu *CPU, opcode uint32) {
	preIndexed := opcode&(1<<24) != 0
	up := opcode&(1<<23) != 0
	forceUserOrRestoreCPSR := opcode&(1<<22) != 0
	writeback := opcode&(1<<21) != 0
	load := opcode&(1<<20) != 0
	rn := int((opcode >> 16) & 0xf)
	mask := uint16(opcode & 0xffff)

	var direction Direction
	switch {
	case up && !preIndexed:
		direction = IA
	case up && preIndexed:
		direction = IB
	case !up && !preIndexed:
		direction = DA
	default:
		direction = DB
	}

	base := cpu.Register(rn)
	pcInList := mask&(1<<rPC) != 0
	userBank := forceUserOrRestoreCPSR && !(load && pcInList)

	var cycles uint64
	count := 0

	if load {
		var pcLoaded bool
		var pcValue uint32

		finalAddr := cpu.mem.LoadMultiple(base, mask, direction, &cycles, func(reg int, value uint32) {
			count++
			switch {
			case userBank:
				cpu.state.registers.SetUserRegister(reg, value)
			case reg == rPC:
				pcLoaded = true
				pcValue = value
			default:
				cpu.SetRegister(reg, value)
			}
		})
		cpu.state.cycles += cycles
		cpu.Ncycle(1)
		if count > 1 {
			cpu.Scycle(uint64(count - 1))
		}

		// A loaded value for Rn itself wins over the computed writeback: Rn
		// is only written here when it wasn't also in the transfer list.
		if writeback && !userBank && mask&(1<<uint(rn)) == 0 {
			cpu.SetRegister(rn, finalAddr)
		}

		if pcLoaded {
			if forceUserOrRestoreCPSR {
				restored := cpu.state.spsr
				cpu.state.registers.SetPrivilegeMode(restored.mode())
				cpu.state.cpsr = restored
				cpu.state.executionMode = ARM
				if restored.thumb() {
					cpu.state.executionMode = THUMB
				}
			} else {
				cpu.state.executionMode = ARM
				if pcValue&1 != 0 {
					cpu.state.executionMode = THUMB
				}
				cpu.state.cpsr.setThumb(pcValue&1 != 0)
			}
			cpu.writePC(pcValue)
		}
		return
	}

	finalAddr := cpu.mem.StoreMultiple(base, mask, direction, &cycles, func(reg int) uint32 {
		count++
		if userBank {
			return cpu.state.registers.UserRegister(reg)
		}
		if reg == rPC {
			return cpu.Register(rPC) + 4
		}
		return cpu.Register(reg)
	})
	cpu.state.cycles += cycles
	cpu.Ncycle(1)
	if count > 1 {
		cpu.Scycle(uint64(count - 1))
	}

	if writeback {
		cpu.SetRegister(rn, finalAddr)
	}
}
