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

// wordSize returns 4 in ARM state, 2 in THUMB state.
func (cpu *CPU) wordSize() uint32 {
	if cpu.state.executionMode == THUMB {
		return 2
	}
	return 4
}

// writePC is the PC-write sequence: triggered by branches, exceptions, and
// any data-processing instruction with Rd=PC. It aligns the target address
// to the current state's word size, tells the memory contract about the
// new active region, refills the prefetch slot from there, advances PC by
// one word, and charges the fixed branch-cost cycles on top of whatever
// the memory contract itself charged for the fetch.
func (cpu *CPU) writePC(addr uint32) {
	word := cpu.wordSize()
	addr &^= word - 1

	cpu.mem.SetActiveRegion(addr)

	var cycles uint64
	if cpu.state.executionMode == THUMB {
		cpu.state.prefetch = cpu.mem.LoadU16(addr, &cycles)
	} else {
		cpu.state.prefetch = cpu.mem.Load32(addr, &cycles)
	}
	cpu.state.cycles += cycles

	cpu.SetRegister(rPC, addr+word)

	// Branch-cost cycles: one non-sequential cycle for the flush and one
	// sequential cycle for the refill, on top of the waitstate cost the
	// memory contract already charged above.
	cpu.Ncycle(1)
	cpu.Scycle(1)
}

// stepOnce performs the fetch/decode/execute portion of Step, without the
// end-of-step event drain, so that RunLoop can iterate it without
// re-entering the interrupt handler after every single instruction.
func (cpu *CPU) stepOnce() {
	opcode := cpu.state.prefetch
	pc := cpu.Register(rPC)

	var cycles uint64
	if cpu.state.executionMode == THUMB {
		cpu.state.prefetch = cpu.mem.LoadU16(pc, &cycles)
		cpu.SetRegister(rPC, pc+2)
	} else {
		cpu.state.prefetch = cpu.mem.Load32(pc, &cycles)
		cpu.SetRegister(rPC, pc+4)
	}
	cpu.state.cycles += cycles
	cpu.Scycle(PrefetchCycles)

	if cpu.state.executionMode == THUMB {
		cpu.dispatchThumb(uint16(opcode))
		return
	}
	cpu.dispatchARM(opcode)
}

// Step executes exactly one instruction and, if the cycle count has
// reached nextEvent as a result, drains events exactly once before
// returning.
func (cpu *CPU) Step() {
	cpu.stepOnce()
	if cpu.state.cycles >= cpu.state.nextEvent {
		cpu.irq.ProcessEvents(cpu)
	}
}

// RunLoop executes Step's fetch/decode/execute body repeatedly while
// cycles < nextEvent, then drains events exactly once. If the CPU is
// halted on entry, it simply fast-forwards cycles to nextEvent and drains
// events without executing anything.
func (cpu *CPU) RunLoop() {
	if cpu.state.halted {
		cpu.state.cycles = cpu.state.nextEvent
		cpu.irq.ProcessEvents(cpu)
		return
	}

	for cpu.state.cycles < cpu.state.nextEvent {
		cpu.stepOnce()
		if cpu.state.halted {
			break
		}
	}

	cpu.irq.ProcessEvents(cpu)
}

// dispatchARM evaluates the condition field and, if it holds, looks the
// opcode up in the 4096-entry ARM table and calls the handler. An unmet
// condition still charges the prefetch cost already charged by stepOnce,
// and nothing more.
func (cpu *CPU) dispatchARM(opcode uint32) {
	cond := opcode >> 28
	if !ConditionHolds(cond, cpu.state.cpsr) {
		return
	}
	index := ((opcode >> 16) & 0xff0) | ((opcode >> 4) & 0x00f)
	armTable[index](cpu, opcode)
}

// dispatchThumb looks the opcode up directly in the 1024-entry THUMB
// table; THUMB instructions carry no condition field of their own (except
// the conditional-branch format, handled inside its own entry).
func (cpu *CPU) dispatchThumb(opcode uint16) {
	index := opcode >> 6
	thumbTable[index](cpu, opcode)
}
