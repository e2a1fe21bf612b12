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
	"testing"

	"github.com/nightjar-systems/arm7tdmi/prefs"
)

// bareMemory is the smallest Memory implementation that can back a CPU in a
// white-box unit test that only exercises a single helper function (the
// decoder, the shifter, a condition check) and never steps a real
// instruction stream.
type bareMemory struct {
	ram [0x10000]uint8
}

func (m *bareMemory) addr(a uint32) uint32 { return a & 0xffff }

func (m *bareMemory) Load32(addr uint32, cycles *uint64) uint32 {
	a := m.addr(addr)
	return uint32(m.ram[a]) | uint32(m.ram[a+1])<<8 | uint32(m.ram[a+2])<<16 | uint32(m.ram[a+3])<<24
}
func (m *bareMemory) Load16(addr uint32, cycles *uint64) int32 {
	return int32(int16(m.LoadU16(addr, cycles)))
}
func (m *bareMemory) LoadU16(addr uint32, cycles *uint64) uint32 {
	a := m.addr(addr)
	return uint32(m.ram[a]) | uint32(m.ram[a+1])<<8
}
func (m *bareMemory) Load8(addr uint32, cycles *uint64) int32 {
	return int32(int8(m.LoadU8(addr, cycles)))
}
func (m *bareMemory) LoadU8(addr uint32, cycles *uint64) uint32 {
	return uint32(m.ram[m.addr(addr)])
}
func (m *bareMemory) Store32(addr uint32, value uint32, cycles *uint64) {
	a := m.addr(addr)
	m.ram[a] = uint8(value)
	m.ram[a+1] = uint8(value >> 8)
	m.ram[a+2] = uint8(value >> 16)
	m.ram[a+3] = uint8(value >> 24)
}
func (m *bareMemory) Store16(addr uint32, value uint16, cycles *uint64) {
	a := m.addr(addr)
	m.ram[a] = uint8(value)
	m.ram[a+1] = uint8(value >> 8)
}
func (m *bareMemory) Store8(addr uint32, value uint8, cycles *uint64) {
	m.ram[m.addr(addr)] = value
}
func (m *bareMemory) LoadMultiple(baseAddress uint32, mask uint16, direction Direction, cycles *uint64, dest func(reg int, value uint32)) uint32 {
	return baseAddress
}
func (m *bareMemory) StoreMultiple(baseAddress uint32, mask uint16, direction Direction, cycles *uint64, src func(reg int) uint32) uint32 {
	return baseAddress
}
func (m *bareMemory) SetActiveRegion(pc uint32) {}

// bareInterruptHandler discards every event; it exists only so New has
// something non-nil to call.
type bareInterruptHandler struct{}

func (bareInterruptHandler) Reset(cpu *CPU)                    {}
func (bareInterruptHandler) ProcessEvents(cpu *CPU)             {}
func (bareInterruptHandler) SWI16(cpu *CPU, comment uint32)     {}
func (bareInterruptHandler) SWI32(cpu *CPU, comment uint32)     {}
func (bareInterruptHandler) HitIllegal(cpu *CPU, opcode uint32) {}
func (bareInterruptHandler) HitStub(cpu *CPU, opcode uint32)    {}
func (bareInterruptHandler) ReadCPSR(cpu *CPU)                  {}

// newBareCPU builds a CPU whose memory and interrupt handler do nothing,
// for tests that call a decoder or ALU helper function directly rather than
// driving execution through Step.
func newBareCPU(t *testing.T) (*CPU, *bareMemory, *bareInterruptHandler) {
	t.Helper()
	mem := &bareMemory{}
	irq := &bareInterruptHandler{}
	cpu, err := New(mem, irq, prefs.NewARM())
	if err != nil {
		t.Fatalf("arm.New: %v", err)
	}
	return cpu, mem, irq
}
