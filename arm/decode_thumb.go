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

// thumbHandler is the shape of every entry in the 1024-slot THUMB dispatch
// table, the same no-decoder-state contract as armHandler.
type thumbHandler func(cpu *CPU, opcode uint16)

// thumbTable is built once, at package init, by buildThumbTable. Index =
// opcode>>6, the top ten bits of the halfword — every one of the
// nineteen THUMB instruction formats is distinguishable from this prefix
// alone; the fields the prefix doesn't cover (register numbers, small
// immediates) are left for each handler to read from the full opcode.
var thumbTable [1024]thumbHandler

func init() {
	buildThumbTable()
}

func buildThumbTable() {
	for index := range thumbTable {
		thumbTable[index] = classifyThumb(uint16(index))
		if thumbTable[index] == nil {
			panic(curated.Errorf("arm: decode table construction: thumb slot 0x%03x has no handler", index))
		}
	}
}

// classifyThumb decodes the format of a THUMB instruction from the top ten
// bits of its opcode (bits 15:6), named hi10 here with bit 0 of hi10
// aligned to opcode bit 6.
func classifyThumb(hi10 uint16) thumbHandler {
	b := func(n uint) bool { return hi10&(1<<n) != 0 }
	// b(9) is opcode bit 15, b(0) is opcode bit 6.
	b15, b14, b13 := b(9), b(8), b(7)
	b12, b11, b10 := b(6), b(5), b(4)
	b9, b8 := b(3), b(2)

	switch {
	case !b15 && !b14 && !b13: // bits 15:13 == 000
		if b12 && b11 { // bits 15:11 == 00011
			return thumbAddSub
		}
		return thumbMoveShifted

	case !b15 && !b14 && b13: // bits 15:13 == 001
		return thumbImmediateOp

	case !b15 && b14 && !b13: // bits 15:13 == 010
		switch {
		case !b12 && !b11 && !b10: // 010000
			return thumbALU
		case !b12 && !b11 && b10: // 010001
			return thumbHiReg
		case !b12 && b11: // 01001x
			return thumbPCRelativeLoad
		case b9: // 0101xx1
			return thumbLoadStoreSigned
		default: // 0101xx0
			return thumbLoadStoreReg
		}

	case !b15 && b14 && b13: // bits 15:13 == 011
		return thumbLoadStoreImmediate

	case b15 && !b14 && !b13: // bits 15:13 == 100
		if !b12 {
			return thumbLoadStoreHalfword
		}
		return thumbSPRelative

	case b15 && !b14 && b13: // bits 15:13 == 101
		if !b12 {
			return thumbLoadAddress
		}
		switch {
		case !b11 && !b10 && !b9 && !b8:
			return thumbAddSPOffset
		case b10 && !b9:
			return thumbPushPop
		default:
			return thumbIll
		}

	case b15 && b14 && !b13: // bits 15:13 == 110
		if !b12 {
			return thumbMultipleLoadStore
		}
		cond := uint32(boolBits(b11, b10, b9, b8))
		if cond == 0xf {
			return thumbSWI
		}
		if cond == 0xe {
			return thumbIll
		}
		return thumbConditionalBranch

	default: // bits 15:13 == 111
		if !b12 {
			return thumbBranch
		}
		return thumbBranchLinkLong
	}
}

func boolBits(bits ...bool) uint8 {
	var v uint8
	for _, set := range bits {
		v <<= 1
		if set {
			v |= 1
		}
	}
	return v
}

// thumbIll backs every unallocated THUMB dispatch-table slot.
func thumbIll(cpu *CPU, opcode uint16) {
	if boolPref("AbortOnIllegalInstruction", cpu.prefs.AbortOnIllegalInstruction) {
		panic(curated.Errorf("arm: illegal instruction: 0x%04x", opcode))
	}
	cpu.irq.HitIllegal(cpu, uint32(opcode))
}
