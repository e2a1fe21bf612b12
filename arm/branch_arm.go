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

// armBranch implements B and BL. The 24-bit signed offset is measured in
// words and relative to the address of the branch instruction plus 8, the
// value Register(rPC) already reports thanks to the two-deep prefetch.
func armBranch(cpu *CPU, opcode uint32) {
	link := opcode&(1<<24) != 0

	offset := int32(opcode&0x00ffffff) << 8 >> 8
	offset *= 4

	pc := cpu.Register(rPC)
	target := uint32(int32(pc) + offset)

	if link {
		cpu.SetRegister(rLR, pc-4)
	}

	cpu.writePC(target)
}

// armBX implements branch-and-exchange: bit 0 of the target address
// selects THUMB state and is then discarded by writePC's alignment.
func armBX(cpu *CPU, opcode uint32) {
	rm := int(opcode & 0xf)
	target := cpu.Register(rm)

	cpu.state.executionMode = ARM
	if target&1 != 0 {
		cpu.state.executionMode = THUMB
	}
	cpu.state.cpsr.setThumb(target&1 != 0)

	cpu.writePC(target)
}
