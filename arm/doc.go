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

// Package arm implements the instruction-execution engine of an ARM7TDMI
// core: ARMv4T, both the 32-bit ARM and 16-bit THUMB instruction states,
// banked registers across the seven privilege modes, exception entry, and
// cycle-accurate dispatch through precomputed 4096/1024-entry function
// tables.
//
// It deliberately does not know about any particular memory map, DMA
// engine, cartridge peripheral, or BIOS. Those live on the other side of
// the Memory, InterruptHandler and Component contracts in interface.go; a
// host wires a concrete implementation of each to a *CPU and drives it with
// Step or RunLoop.
//
// References used while implementing the instruction semantics:
//
// https://www.cs.miami.edu/home/burt/learning/Csc521.141/Documents/arm_arm.pdf
//
// http://www.ecs.csun.edu/~smirzaei/docs/ece425/arm7tdmi_instruction_set_reference.pdf
//
// https://developer.arm.com/documentation/ddi0234/b
package arm
