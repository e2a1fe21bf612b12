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

// thumbConditionalBranch implements format 16. Condition codes 0xE and
// 0xF are reserved at this dispatch slot (0xF is routed to thumbSWI and
// 0xE to thumbIll by the table builder, so cond here is always one of the
// fourteen ordinary conditions).
func thumbConditionalBranch(cpu *CPU, opcode uint16) {
	cond := uint32(opcode>>8) & 0xf
	if !ConditionHolds(cond, cpu.state.cpsr) {
		return
	}

	offset := int32(int8(opcode&0xff)) * 2
	target := uint32(int32(cpu.Register(rPC)) + offset)
	cpu.writePC(target)
}

// thumbSWI implements format 17.
func thumbSWI(cpu *CPU, opcode uint16) {
	cpu.irq.SWI16(cpu, uint32(opcode&0xff))
}

// thumbBranch implements format 18: an unconditional branch with an
// 11-bit signed word-pair offset.
func thumbBranch(cpu *CPU, opcode uint16) {
	offset := signExtend(uint32(opcode&0x7ff), 11) * 2
	target := uint32(int32(cpu.Register(rPC)) + offset)
	cpu.writePC(target)
}

// thumbBranchLinkLong implements format 19, BL's two-halfword encoding.
// The first half (H=0) stashes PC + (offset<<12) in LR; the second (H=1)
// computes the final target from LR and the low 11 bits, sets LR to the
// return address with bit 0 forced set (the BX-compatible encoding for
// "return to THUMB state"), and branches. No decoder state is needed
// across the two halves: LR itself carries the partial result, exactly as
// the real pipeline does.
func thumbBranchLinkLong(cpu *CPU, opcode uint16) {
	high := opcode&(1<<11) != 0
	offset11 := uint32(opcode & 0x7ff)

	if !high {
		lr := uint32(int32(cpu.Register(rPC)) + signExtend(offset11, 11)<<12)
		cpu.SetRegister(rLR, lr)
		return
	}

	lrVal := cpu.Register(rLR)
	nextInstruction := cpu.Register(rPC) - 2
	target := lrVal + offset11<<1

	cpu.SetRegister(rLR, nextInstruction|1)
	cpu.writePC(target)
}

// signExtend sign-extends the low bits-wide field of v to a full int32.
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}
