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

// The seven architectural exception vectors.
const (
	vectorReset     uint32 = 0x00000000
	vectorUndefined uint32 = 0x00000004
	vectorSWI       uint32 = 0x00000008
	vectorPAbt      uint32 = 0x0000000c
	vectorDAbt      uint32 = 0x00000010
	vectorIRQ       uint32 = 0x00000018
	vectorFIQ       uint32 = 0x0000001c
)

// enterException is the single sequence every exception entry goes
// through: snapshot CPSR, swap banks into the target mode, save the
// snapshot as the new mode's SPSR, mask interrupts, compute LR from the
// address of the instruction that caused the exception, vector PC, and
// force ARM state.
func (cpu *CPU) enterException(mode PrivilegeMode, vector uint32, lrAdjustment uint32, maskFIQ bool) {
	width := cpu.wordSize()
	pc := cpu.Register(rPC)
	snapshot := cpu.state.cpsr

	cpu.state.registers.SetPrivilegeMode(mode)
	cpu.state.spsr = snapshot

	cpu.state.cpsr.setMode(mode)
	cpu.state.cpsr.SetIRQDisable(true)
	if maskFIQ {
		cpu.state.cpsr.SetFIQDisable(true)
	}
	cpu.state.cpsr.setThumb(false)
	cpu.state.executionMode = ARM

	cpu.SetRegister(rLR, pc-width+lrAdjustment)

	cpu.writePC(vector)

	cpu.log.Logf(logPermission{cpu}, "ARM7", "exception entry: %s, vector 0x%08x", mode, vector)
}

// RaiseIRQ enters the IRQ exception, unless cpsr.I is already set, in
// which case it is a no-op: IRQ entry is suppressed whenever interrupts
// are masked at the call site.
func (cpu *CPU) RaiseIRQ() {
	if cpu.state.cpsr.IRQDisable() {
		return
	}
	cpu.enterException(IRQ, vectorIRQ, 4, false)
}

// RaiseFIQ enters the FIQ exception, unless cpsr.F is already set.
func (cpu *CPU) RaiseFIQ() {
	if cpu.state.cpsr.FIQDisable() {
		return
	}
	cpu.enterException(FIQ, vectorFIQ, 4, true)
}

// RaiseSoftwareInterrupt performs the architectural SWI exception entry.
// It exists so an InterruptHandler.SWI16/SWI32 implementation can choose
// to emulate a BIOS routine directly instead, without the CPU hard-coding
// which behaviour is correct for a given platform.
func (cpu *CPU) RaiseSoftwareInterrupt() {
	cpu.enterException(Supervisor, vectorSWI, 0, false)
}

// RaiseUndefinedInstruction performs the architectural undefined-instruction
// exception entry.
func (cpu *CPU) RaiseUndefinedInstruction() {
	cpu.enterException(Undefined, vectorUndefined, 0, false)
}

// RaisePrefetchAbort performs the architectural prefetch-abort exception
// entry.
func (cpu *CPU) RaisePrefetchAbort() {
	cpu.enterException(Abort, vectorPAbt, 0, false)
}

// RaiseDataAbort performs the architectural data-abort exception entry.
func (cpu *CPU) RaiseDataAbort() {
	cpu.enterException(Abort, vectorDAbt, 4, false)
}

// logPermission gates exception-entry tracing behind the DebugTrace
// preference, following the teacher's Permission-object pattern for
// conditionally suppressing a log entry.
type logPermission struct {
	cpu *CPU
}

func (p logPermission) AllowLogging() bool {
	return boolPref("DebugTrace", p.cpu.prefs.DebugTrace)
}
