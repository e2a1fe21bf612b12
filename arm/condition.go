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

// The sixteen values of the 4-bit condition field, bits 31:28 of every ARM
// opcode.
const (
	condEQ uint32 = iota
	condNE
	condCS
	condCC
	condMI
	condPL
	condVS
	condVC
	condHI
	condLS
	condGE
	condLT
	condGT
	condLE
	condAL
	condNV
)

// ConditionHolds evaluates the four-bit condition field against cpsr's
// flags, following "A3.3 Condition fields" of the ARM reference. NV
// (reserved/never) always evaluates false; ARMv5+ gives it a new meaning
// this core does not implement.
func ConditionHolds(cond uint32, cpsr PSR) bool {
	switch cond {
	case condEQ:
		return cpsr.Z()
	case condNE:
		return !cpsr.Z()
	case condCS:
		return cpsr.C()
	case condCC:
		return !cpsr.C()
	case condMI:
		return cpsr.N()
	case condPL:
		return !cpsr.N()
	case condVS:
		return cpsr.V()
	case condVC:
		return !cpsr.V()
	case condHI:
		return cpsr.C() && !cpsr.Z()
	case condLS:
		return !cpsr.C() || cpsr.Z()
	case condGE:
		return cpsr.N() == cpsr.V()
	case condLT:
		return cpsr.N() != cpsr.V()
	case condGT:
		return !cpsr.Z() && cpsr.N() == cpsr.V()
	case condLE:
		return cpsr.Z() || cpsr.N() != cpsr.V()
	case condAL:
		return true
	default: // condNV
		return false
	}
}
