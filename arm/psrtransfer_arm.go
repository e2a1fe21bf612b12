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

import "github.com/nightjar-systems/arm7tdmi/curated"

// armMRS copies CPSR or, in a privileged mode, the current SPSR into Rd.
func armMRS(cpu *CPU, opcode uint32) {
	useSPSR := opcode&(1<<22) != 0
	rd := int((opcode >> 12) & 0xf)

	var value PSR
	if useSPSR {
		value = cpu.state.spsr
	} else {
		value = cpu.CPSR()
	}
	cpu.SetRegister(rd, uint32(value))
}

// armMSR writes the flags byte (bits 31:24) and/or the control byte (bits
// 7:0) of CPSR or SPSR, selected by bits 19 and 16 of the opcode
// (the f and c field-mask bits). ARMv4T has no status or extension byte
// in the PSR for the s and x field-mask bits (18, 17) to select, so a
// plain write of either is silently dropped; with the StrictMSR
// preference enabled, requesting either one instead panics, surfacing an
// instruction stream that assumes a PSR layout this core doesn't have.
//
// Writing the control byte of CPSR changes privilege mode, which must go
// through SetPrivilegeMode to swap register banks. That write is a no-op
// in User mode: User has no privileged neighbor to elevate into, and real
// hardware silently drops it rather than letting unprivileged code bank-
// swap its way into another mode.
func armMSR(cpu *CPU, opcode uint32) {
	useSPSR := opcode&(1<<22) != 0
	writeFlags := opcode&(1<<19) != 0
	writeStatus := opcode&(1<<18) != 0
	writeExtension := opcode&(1<<17) != 0
	writeControl := opcode&(1<<16) != 0

	if (writeStatus || writeExtension) && boolPref("StrictMSR", cpu.prefs.StrictMSR) {
		panic(curated.Errorf("arm: MSR write to undocumented PSR status/extension field"))
	}

	var operand uint32
	if opcode&(1<<25) != 0 {
		rotate := ((opcode >> 8) & 0xf) * 2
		operand = rotr32(opcode&0xff, rotate)
	} else {
		operand = cpu.Register(int(opcode & 0xf))
	}

	if useSPSR {
		current := cpu.state.spsr
		if writeFlags {
			current = (current &^ 0xff000000) | PSR(operand&0xff000000)
		}
		if writeControl {
			current = (current &^ 0xff) | PSR(operand&0xff)
		}
		cpu.state.spsr = current
		return
	}

	current := cpu.state.cpsr
	if writeFlags {
		current = (current &^ 0xff000000) | PSR(operand&0xff000000)
	}
	if writeControl && cpu.state.privilegeMode != User {
		current = (current &^ 0xff) | PSR(operand&0xff)
		cpu.state.registers.SetPrivilegeMode(current.mode())
	}
	cpu.state.cpsr = current
}
