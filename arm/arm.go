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
	"strings"

	"github.com/nightjar-systems/arm7tdmi/curated"
	"github.com/nightjar-systems/arm7tdmi/logger"
	"github.com/nightjar-systems/arm7tdmi/prefs"
)

// ARMState is the serialisable half of the CPU: every field needed to
// resume execution from exactly where it left off. It holds no reference
// to any external collaborator, so a *ARMState can be copied, stashed, and
// restored freely (see snapshot.go).
type ARMState struct {
	registers

	// prefetch is the instruction word already fetched and waiting to
	// execute; PC is always two instructions ahead of it architecturally.
	prefetch uint32

	// cycles is the monotonic cycle counter since the last Reset.
	cycles uint64

	// nextEvent is the external deadline; RunLoop returns once
	// cycles >= nextEvent.
	nextEvent uint64

	// halted, when set, makes RunLoop fast-forward cycles to nextEvent
	// without executing anything.
	halted bool

	// shifterOperand and shifterCarryOut are the outputs of the most
	// recent addressing-mode-1 evaluation, consumed by the
	// data-processing handler that requested them.
	shifterOperand  uint32
	shifterCarryOut bool
}

// Snapshot makes a copy of the ARMState.
func (s *ARMState) Snapshot() *ARMState {
	n := *s
	return &n
}

// CPU implements the ARM7TDMI-ARMv4T instruction-execution engine.
type CPU struct {
	state *ARMState

	mem        Memory
	irq        InterruptHandler
	components []Component

	prefs *prefs.ARM
	log   *logger.Logger

	// trail, when non-nil, records the cycle types Icycle, Scycle and
	// Ncycle charge; nothing in this package sets it.
	trail *cycleTrail

	abortOnMemoryFault bool
}

// New is the preferred method of initialisation for the CPU type. The
// master component, if any, is expected to be the first entry of
// components; every component's Init is called in the order given.
func New(mem Memory, irq InterruptHandler, p *prefs.ARM, components ...Component) (*CPU, error) {
	if mem == nil {
		return nil, curated.Errorf("arm: memory contract must not be nil")
	}
	if irq == nil {
		return nil, curated.Errorf("arm: interrupt handler must not be nil")
	}
	if p == nil {
		p = prefs.NewARM()
	}

	cpu := &CPU{
		mem:        mem,
		irq:        irq,
		components: components,
		prefs:      p,
		log:        logger.NewLogger(512),
		state:      &ARMState{},
	}

	for _, c := range components {
		if err := c.Init(cpu); err != nil {
			return nil, curated.Errorf("arm: component init: %v", err)
		}
	}

	cpu.updatePrefs()
	cpu.Reset()

	return cpu, nil
}

// Deinit releases external collaborators. It never frees the CPU state
// struct itself; a caller that wants to discard the CPU entirely just
// drops the last reference to it.
func (cpu *CPU) Deinit() {
	for _, c := range cpu.components {
		if d, ok := c.(Deinitializer); ok {
			d.Deinit()
		}
	}
}

// updatePrefs re-reads the preference values that affect how the CPU
// behaves. It is safe to call at any instruction boundary.
func (cpu *CPU) updatePrefs() {
	cpu.abortOnMemoryFault = boolPref("AbortOnMemoryFault", cpu.prefs.AbortOnMemoryFault)
}

// boolPref performs the Get().(bool) type assertion every preference read
// in this package relies on, raising a curated error instead of a bare
// runtime panic when a host has wired up a preference of the wrong type.
func boolPref(name string, v prefs.Value) bool {
	b, ok := v.Get().(bool)
	if !ok {
		panic(curated.Errorf("arm: preference %s: expected bool, got %T", name, v.Get()))
	}
	return b
}

// Reset zeroes every register, bank and SPSR, sets privilege mode to
// System, execution state to ARM, writes PC to the reset vector, and
// notifies the interrupt handler.
func (cpu *CPU) Reset() {
	cpu.state.registers.reset()
	cpu.state.prefetch = 0
	cpu.state.cycles = 0
	cpu.state.nextEvent = 0
	cpu.state.halted = false
	cpu.state.shifterOperand = 0
	cpu.state.shifterCarryOut = false

	cpu.writePC(0x00000000)

	cpu.irq.Reset(cpu)
}

// Register reads general register n (0..15).
func (cpu *CPU) Register(n int) uint32 {
	return cpu.state.registers.Register(n)
}

// SetRegister writes general register n (0..15).
func (cpu *CPU) SetRegister(n int, v uint32) {
	cpu.state.registers.SetRegister(n, v)
}

// ExtendedRegister reads one of the CPU's 17 addressable registers: the 16
// GPRs followed by the CPSR at index 16. It is modelled on the teacher's
// DWARF-numbered extended-register surface, trimmed to what an ARMv4T core
// without a coprocessor bank actually has; any index beyond 16 reports ok
// as false rather than panicking, since a host disassembler or debugger
// may probe register numbers speculatively.
func (cpu *CPU) ExtendedRegister(reg int) (value uint32, ok bool) {
	switch {
	case reg >= 0 && reg < NumRegisters:
		return cpu.Register(reg), true
	case reg == NumRegisters:
		return uint32(cpu.CPSR()), true
	default:
		return 0, false
	}
}

// CPSR returns the current program status register, after re-deriving
// executionMode and privilegeMode from it and giving the interrupt
// handler the chance to react, for example to re-evaluate IRQ masking.
func (cpu *CPU) CPSR() PSR {
	value := cpu.state.registers.ReadCPSR()
	cpu.irq.ReadCPSR(cpu)
	return value
}

// SPSR returns the saved program status register of the current mode. Its
// value is architecturally undefined in User and System mode.
func (cpu *CPU) SPSR() PSR {
	return cpu.state.spsr
}

// PrivilegeMode returns the CPU's current privilege mode.
func (cpu *CPU) PrivilegeMode() PrivilegeMode {
	return cpu.state.privilegeMode
}

// ExecutionMode returns whether the CPU is currently fetching ARM or
// THUMB instructions.
func (cpu *CPU) ExecutionMode() ExecutionMode {
	return cpu.state.executionMode
}

// Cycles returns the monotonic cycle count since the last Reset.
func (cpu *CPU) Cycles() uint64 {
	return cpu.state.cycles
}

// SetNextEvent sets the deadline at which RunLoop returns control to the
// host. It may be called from within ProcessEvents to schedule the next
// wakeup.
func (cpu *CPU) SetNextEvent(deadline uint64) {
	cpu.state.nextEvent = deadline
}

// Halt sets or clears the halted flag. While halted, RunLoop fast-forwards
// cycles to nextEvent without executing any instruction.
func (cpu *CPU) Halt(v bool) {
	cpu.state.halted = v
}

// Halted reports whether the CPU is currently halted.
func (cpu *CPU) Halted() bool {
	return cpu.state.halted
}

// Log exposes the CPU's internal ring-buffered logger, so a host can
// retrieve diagnostics (exception-entry tracing, when DebugTrace is set)
// without the CPU ever writing to stdout/stderr itself.
func (cpu *CPU) Log() *logger.Logger {
	return cpu.log
}

func (cpu *CPU) String() string {
	var s strings.Builder
	for i := 0; i < NumRegisters; i++ {
		if i > 0 {
			if i%4 == 0 {
				s.WriteByte('\n')
			} else {
				s.WriteString("\t\t")
			}
		}
		fmt.Fprintf(&s, "R%-2d: %08x", i, cpu.Register(i))
	}
	s.WriteByte('\n')
	s.WriteString(cpu.CPSR().String())
	return s.String()
}
