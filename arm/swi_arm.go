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

// armSWI hands the 24-bit comment field straight to the host. The host
// decides whether to emulate the requested call directly or call
// CPU.RaiseSoftwareInterrupt to perform the architectural exception entry.
func armSWI(cpu *CPU, opcode uint32) {
	cpu.irq.SWI32(cpu, opcode&0x00ffffff)
}
