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

import (
	"fmt"

	"github.com/nightjar-systems/arm7tdmi/curated"
)

// DisasmEntry is one decoded instruction, suitable for a debugger or trace
// log to render without re-implementing any of the decode logic itself.
type DisasmEntry struct {
	Address  uint32
	Opcode   uint32
	Operator string
	Operand  string
}

func (e DisasmEntry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

var conditionMnemonic = [16]string{
	"EQ", "NE", "CS", "CC", "MI", "PL", "VS", "VC",
	"HI", "LS", "GE", "LT", "GT", "LE", "", "NV",
}

var dataProcessingMnemonic = [16]string{
	"AND", "EOR", "SUB", "RSB", "ADD", "ADC", "SBC", "RSC",
	"TST", "TEQ", "CMP", "CMN", "ORR", "MOV", "BIC", "MVN",
}

// Disassemble decodes the ARM-state instruction word at pc without
// executing it, for use by a host debugger or trace log. It reads through
// the same Memory contract the CPU itself uses, with a throwaway cycle
// counter since disassembly must not perturb the running program's timing.
func (cpu *CPU) Disassemble(pc uint32) (DisasmEntry, error) {
	var cycles uint64
	opcode := cpu.mem.Load32(pc, &cycles)

	entry := DisasmEntry{Address: pc, Opcode: opcode}

	cond := conditionMnemonic[opcode>>28]
	suffix := func(mnemonic string) string {
		if cond == "" {
			return mnemonic
		}
		return mnemonic + cond
	}

	switch {
	case opcode&0x0fffffd0 == 0x012fff10:
		entry.Operator = suffix("BX")
		entry.Operand = fmt.Sprintf("r%d", opcode&0xf)

	case opcode&0x0e000000 == 0x0a000000:
		offset := int32(opcode&0x00ffffff) << 8 >> 8
		target := pc + 8 + uint32(offset*4)
		if opcode&(1<<24) != 0 {
			entry.Operator = suffix("BL")
		} else {
			entry.Operator = suffix("B")
		}
		entry.Operand = fmt.Sprintf("0x%08x", target)

	case opcode&0x0fc000f0 == 0x00000090:
		entry.Operator = suffix("MUL")
		entry.Operand = fmt.Sprintf("r%d, r%d, r%d", (opcode>>16)&0xf, opcode&0xf, (opcode>>8)&0xf)

	case opcode&0x0fb00000 == 0x01000000 && opcode&0x00000010 == 0:
		if opcode&(1<<21) != 0 {
			entry.Operator = suffix("MSR")
			entry.Operand = fmt.Sprintf("psr, r%d", opcode&0xf)
		} else {
			entry.Operator = suffix("MRS")
			entry.Operand = fmt.Sprintf("r%d, psr", (opcode>>12)&0xf)
		}

	case opcode&0x0c000000 == 0x04000000:
		mnemonic := "STR"
		if opcode&(1<<20) != 0 {
			mnemonic = "LDR"
		}
		if opcode&(1<<22) != 0 {
			mnemonic += "B"
		}
		entry.Operator = suffix(mnemonic)
		entry.Operand = fmt.Sprintf("r%d, [r%d]", (opcode>>12)&0xf, (opcode>>16)&0xf)

	case opcode&0x0e000000 == 0x08000000:
		mnemonic := "STM"
		if opcode&(1<<20) != 0 {
			mnemonic = "LDM"
		}
		entry.Operator = suffix(mnemonic)
		entry.Operand = fmt.Sprintf("r%d, {0x%04x}", (opcode>>16)&0xf, opcode&0xffff)

	case opcode&0x0f000000 == 0x0f000000:
		entry.Operator = suffix("SWI")
		entry.Operand = fmt.Sprintf("0x%06x", opcode&0x00ffffff)

	case opcode&0x0c000000 == 0x00000000:
		op := (opcode >> 21) & 0xf
		mnemonic := dataProcessingMnemonic[op]
		if opcode&(1<<20) != 0 && op < 8 {
			mnemonic += "S"
		}
		entry.Operator = suffix(mnemonic)
		entry.Operand = fmt.Sprintf("r%d, r%d, ...", (opcode>>12)&0xf, (opcode>>16)&0xf)

	default:
		return entry, curated.Errorf("arm: disassemble: no decoding known for opcode 0x%08x", opcode)
	}

	return entry, nil
}
