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

// The sixteen data-processing opcodes, bits 24:21.
const (
	dpAND = iota
	dpEOR
	dpSUB
	dpRSB
	dpADD
	dpADC
	dpSBC
	dpRSC
	dpTST
	dpTEQ
	dpCMP
	dpCMN
	dpORR
	dpMOV
	dpBIC
	dpMVN
)

// addWithCarryIn is the ALU primitive every arithmetic data-processing
// opcode reduces to: ADD, SUB, ADC, SBC, CMP, CMN and their reverse forms
// are all additions of a, b (one of them complemented) and a carry-in of 0
// or 1.
func addWithCarryIn(a, b, cin uint32) (result uint32, carry, overflow bool) {
	sum := uint64(a) + uint64(b) + uint64(cin)
	result = uint32(sum)
	carry = sum > 0xffffffff
	overflow = addOverflow(a, b, result)
	return
}

// armDataProcessing implements all sixteen data-processing opcodes, both
// the immediate and register forms of operand 2 (operand2 itself picks
// between them), including the S=1,Rd=15 SPSR-restore idiom used to
// return from an exception handler and the comparison opcodes (TST,
// TEQ, CMP, CMN) that never write Rd.
func armDataProcessing(cpu *CPU, opcode uint32) {
	op := (opcode >> 21) & 0xf
	s := opcode&(1<<20) != 0
	rn := int((opcode >> 16) & 0xf)
	rd := int((opcode >> 12) & 0xf)

	operand2Val, shifterCarry := operand2(cpu, opcode)
	rnVal := cpu.Register(rn)

	var result uint32
	var carry, overflow bool
	logical := false
	writesResult := true
	carryIn := uint32(0)
	if cpu.state.cpsr.C() {
		carryIn = 1
	}

	switch op {
	case dpAND, dpTST:
		result = rnVal & operand2Val
		logical = true
		writesResult = op != dpTST
	case dpEOR, dpTEQ:
		result = rnVal ^ operand2Val
		logical = true
		writesResult = op != dpTEQ
	case dpSUB, dpCMP:
		result = rnVal - operand2Val
		carry = subCarry(rnVal, operand2Val)
		overflow = subOverflow(rnVal, operand2Val, result)
		writesResult = op != dpCMP
	case dpRSB:
		result = operand2Val - rnVal
		carry = subCarry(operand2Val, rnVal)
		overflow = subOverflow(operand2Val, rnVal, result)
	case dpADD, dpCMN:
		result = rnVal + operand2Val
		carry = addCarry(rnVal, operand2Val)
		overflow = addOverflow(rnVal, operand2Val, result)
		writesResult = op != dpCMN
	case dpADC:
		result, carry, overflow = addWithCarryIn(rnVal, operand2Val, carryIn)
	case dpSBC:
		result, carry, overflow = addWithCarryIn(rnVal, ^operand2Val, carryIn)
	case dpRSC:
		result, carry, overflow = addWithCarryIn(operand2Val, ^rnVal, carryIn)
	case dpORR:
		result = rnVal | operand2Val
		logical = true
	case dpMOV:
		result = operand2Val
		logical = true
	case dpBIC:
		result = rnVal &^ operand2Val
		logical = true
	case dpMVN:
		result = ^operand2Val
		logical = true
	}

	if logical {
		carry = shifterCarry
	}

	if s && rd == rPC {
		restored := cpu.state.spsr
		cpu.state.registers.SetPrivilegeMode(restored.mode())
		cpu.state.cpsr = restored
		cpu.state.executionMode = ARM
		if restored.thumb() {
			cpu.state.executionMode = THUMB
		}
	}

	if writesResult && rd == rPC {
		cpu.writePC(result)
	} else if writesResult {
		cpu.SetRegister(rd, result)
	}

	if s && !(writesResult && rd == rPC) {
		cpu.state.cpsr.setNZ(result)
		cpu.state.cpsr.SetC(carry)
		if !logical {
			cpu.state.cpsr.SetV(overflow)
		}
	}
}
