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

// armHandler is the shape of every entry in the 4096-slot ARM dispatch
// table. It mutates cpu state directly; there is no decoder state held
// between calls; every operand field (Rd, Rn, Rm, Rs, shift kind,
// immediate) is re-extracted from opcode inline.
type armHandler func(cpu *CPU, opcode uint32)

// armTable is built once, at package init, by buildARMTable. Index =
// ((opcode>>16)&0xFF0) | ((opcode>>4)&0x00F), packing bits 27:20 with bits
// 7:4 of the opcode — the smallest superset of bits that distinguishes
// every ARM7TDMI opcode.
var armTable [4096]armHandler

func init() {
	buildARMTable()
}

// buildARMTable fills every one of the table's 4096 entries declaratively:
// for each index it reconstructs the two opcode-field fragments the index
// encodes (hi8 = bits 27:20, lo4 = bits 7:4) and classifies the
// instruction from those bits alone, exactly as real ARM7TDMI decode
// hardware does. Every combination that the architecture leaves
// unallocated resolves to illHandler; no slot is ever left nil.
func buildARMTable() {
	for index := range armTable {
		hi8 := uint8((index >> 4) & 0xff)
		lo4 := uint8(index & 0xf)
		armTable[index] = classifyARM(hi8, lo4)
		if armTable[index] == nil {
			panic(curated.Errorf("arm: decode table construction: slot 0x%03x (hi8=0x%02x lo4=0x%x) has no handler", index, hi8, lo4))
		}
	}
}

func classifyARM(hi8, lo4 uint8) armHandler {
	switch hi8 & 0xc0 {
	case 0x00: // bits 27:26 == 00
		if hi8&0x20 == 0 {
			return classifyARMBlock000(hi8, lo4)
		}
		return classifyARMDataProcessingImmediate(hi8)

	case 0x40: // bits 27:26 == 01
		if hi8&0x20 != 0 && lo4&0x1 != 0 {
			return illHandler // the undefined-instruction trap space
		}
		return armSingleDataTransfer

	case 0x80: // bits 27:26 == 10
		if hi8&0x20 == 0 {
			return armBlockDataTransfer
		}
		return armBranch

	default: // bits 27:26 == 11
		if hi8&0x20 == 0 {
			return armCoprocStub // coprocessor data transfer
		}
		if hi8&0xf0 == 0xf0 {
			return armSWI
		}
		if lo4&0x1 == 0 {
			return armCoprocStub // coprocessor data operation
		}
		return armCoprocStub // coprocessor register transfer
	}
}

// classifyARMBlock000 covers the bits27:25=000 sub-block: data processing
// (register-form operand 2), multiply and multiply-long, single data
// swap, MRS/MSR (register form), BX, and the halfword/signed-byte
// transfer family. All of these share the property that bit 25 is clear.
func classifyARMBlock000(hi8, lo4 uint8) armHandler {
	switch lo4 {
	case 0x9: // bit7=1,bit4=1: multiply family, SWP/SWPB, or unallocated
		switch hi8 {
		case 0x10, 0x14:
			return armSwap
		}
		switch {
		case hi8&0xfc == 0x00: // bits 27:22 == 000000
			return armMultiply
		case hi8&0xf8 == 0x08: // bits 27:23 == 00001
			return armMultiplyLong
		}
		return illHandler

	case 0x0, 0x1: // bit7=0,bit4={0,1}: MRS/MSR/BX at their four reserved
		// hi8 values, register-form data processing (no shift, or
		// register-controlled LSL) everywhere else.
		switch hi8 {
		case 0x10, 0x14:
			if lo4 == 0x0 {
				return armMRS
			}
			return illHandler
		case 0x12, 0x16:
			if lo4 == 0x0 {
				return armMSR
			}
			if lo4 == 0x1 && hi8 == 0x12 {
				return armBX
			}
			return illHandler
		}
		return armDataProcessing

	case 0xb, 0xd, 0xf:
		return armHalfwordTransfer

	default:
		return armDataProcessing
	}
}

// classifyARMDataProcessingImmediate covers bit25=1 within bits27:26=00:
// ordinary immediate-operand2 data processing, and the two cases (op=9,
// R=0 and op=11, R=1) that the architecture reassigns to MSR's immediate
// form instead of TEQ/CMN with S clear.
func classifyARMDataProcessingImmediate(hi8 uint8) armHandler {
	op := (hi8 >> 1) & 0xf
	sBit := hi8 & 1
	if sBit == 0 {
		switch op {
		case 9, 11:
			return armMSR
		case 8, 10:
			return illHandler
		}
	}
	return armDataProcessing
}

// illHandler backs every unallocated dispatch-table slot. It charges no
// cycles of its own (stepOnce has already charged the prefetch cost) and
// reports the hit to the host, which typically raises the Undefined
// exception; with AbortOnIllegalInstruction set it panics instead.
func illHandler(cpu *CPU, opcode uint32) {
	if boolPref("AbortOnIllegalInstruction", cpu.prefs.AbortOnIllegalInstruction) {
		panic(curated.Errorf("arm: illegal instruction: 0x%08x", opcode))
	}
	cpu.irq.HitIllegal(cpu, opcode)
}

// armCoprocStub backs every coprocessor data-transfer, data-operation and
// register-transfer slot, along with any breakpoint-style trap a host
// wants to recognise. This core does not implement a coprocessor beyond
// this hook.
func armCoprocStub(cpu *CPU, opcode uint32) {
	cpu.irq.HitStub(cpu, opcode)
}
