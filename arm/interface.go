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

// Direction selects one of the four addressing forms of LDM/STM.
type Direction int

// The four LDM/STM addressing forms.
const (
	IA Direction = iota
	IB
	DA
	DB
)

// Memory is the contract the CPU uses for every load, store and PC write. A
// host provides one implementation per embedding; the CPU never assumes
// anything about the address space behind it beyond what these methods
// report.
//
// Every access takes the running cycle accumulator by pointer and adds the
// waitstate cost of the access to it, following the source material's
// "pass a cycle counter into every memory call" idiom (see cycles.go).
type Memory interface {
	Load32(addr uint32, cycles *uint64) uint32
	Load16(addr uint32, cycles *uint64) int32
	LoadU16(addr uint32, cycles *uint64) uint32
	Load8(addr uint32, cycles *uint64) int32
	LoadU8(addr uint32, cycles *uint64) uint32

	Store32(addr uint32, value uint32, cycles *uint64)
	Store16(addr uint32, value uint16, cycles *uint64)
	Store8(addr uint32, value uint8, cycles *uint64)

	// LoadMultiple and StoreMultiple transfer the registers named in mask
	// (bit N selects gprs[N]) starting at baseAddress in the given
	// direction, and return the final address the base register should be
	// written back to.
	LoadMultiple(baseAddress uint32, mask uint16, direction Direction, cycles *uint64, dest func(reg int, value uint32)) uint32
	StoreMultiple(baseAddress uint32, mask uint16, direction Direction, cycles *uint64, src func(reg int) uint32) uint32

	// SetActiveRegion is called whenever the CPU writes PC. It gives the
	// memory implementation the chance to update whatever cached view of
	// the address space (base pointer, mask, waitstate costs) it uses to
	// serve the fetches that follow.
	SetActiveRegion(pc uint32)
}

// InterruptHandler is the contract through which the CPU reports events it
// cannot resolve on its own: resets, software interrupts, illegal and stub
// instructions, deadline expiry, and CPSR changes.
type InterruptHandler interface {
	// Reset is called once, at the end of CPU.Reset.
	Reset(cpu *CPU)

	// ProcessEvents is called whenever cycles reaches nextEvent. It is the
	// only place the host may re-enter the CPU's scheduler: raising IRQs,
	// remapping memory, or advancing timers.
	ProcessEvents(cpu *CPU)

	// SWI16 and SWI32 service the THUMB and ARM software-interrupt
	// instructions respectively. The handler decides whether to emulate a
	// BIOS call directly or to perform the architectural exception entry
	// via CPU.RaiseSoftwareInterrupt.
	SWI16(cpu *CPU, comment uint32)
	SWI32(cpu *CPU, comment uint32)

	// HitIllegal is invoked by the ILL dispatch-table entry.
	HitIllegal(cpu *CPU, opcode uint32)

	// HitStub is invoked by coprocessor and BKPT stub entries.
	HitStub(cpu *CPU, opcode uint32)

	// ReadCPSR is called every time the CPSR is read through CPU.CPSR,
	// giving the host the opportunity to react (for example, to re-evaluate
	// IRQ masking).
	ReadCPSR(cpu *CPU)
}

// Component is a peripheral the host attaches to the CPU at construction.
// Components form a fixed list; there is no dynamic attach or detach while
// the CPU is running.
type Component interface {
	Init(cpu *CPU) error
}

// Deinitializer is implemented by a Component that holds a resource needing
// an explicit release. Deinit never touches CPU state.
type Deinitializer interface {
	Deinit()
}
