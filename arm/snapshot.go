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

// Snapshot returns a copy of the CPU's serialisable state. Because
// ARMState is a flat value type with no pointers into CPU-owned
// collaborators, the copy is independent of further execution: a snapshot
// taken between Step calls always reflects a fully settled instruction
// boundary, since mode changes and register-bank swaps are atomic within
// a single Step.
func (cpu *CPU) Snapshot() *ARMState {
	return cpu.state.Snapshot()
}

// Restore replaces the CPU's state with a previously taken Snapshot. The
// CPU's external collaborators (Memory, InterruptHandler, Component list)
// are kept, not replaced; besides the state itself, Restore's only effect
// is a call to Memory.SetActiveRegion with the restored PC.
func (cpu *CPU) Restore(s *ARMState) {
	n := s.Snapshot()
	cpu.state = n
	cpu.mem.SetActiveRegion(cpu.Register(rPC))
}
