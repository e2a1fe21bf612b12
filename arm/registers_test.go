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

	"github.com/nightjar-systems/arm7tdmi/test"
)

// TestBankedSPAndLRSurviveARoundTrip writes a distinct SP/LR pair into every
// non-User bank, cycles through every mode, and confirms each bank's SP/LR
// reappear unchanged when that mode comes back around -- SetPrivilegeMode's
// checkpoint/restore must never leak one mode's shadow into another's.
func TestBankedSPAndLRSurviveARoundTrip(t *testing.T) {
	var r registers
	r.reset()

	modes := []PrivilegeMode{FIQ, IRQ, Supervisor, Abort, Undefined, System, User}
	want := map[PrivilegeMode][2]uint32{
		FIQ:        {0xf1000000, 0xf2000000},
		IRQ:        {0x11000000, 0x12000000},
		Supervisor: {0x51000000, 0x52000000},
		Abort:      {0xa1000000, 0xa2000000},
		Undefined:  {0xd1000000, 0xd2000000},
		System:     {0x51010000, 0x52020000},
		User:       {0x51010000, 0x52020000}, // User and System share bankNone
	}

	for _, m := range modes {
		r.SetPrivilegeMode(m)
		r.SetRegister(rSP, want[m][0])
		r.SetRegister(rLR, want[m][1])
	}

	for _, m := range modes {
		r.SetPrivilegeMode(m)
		test.ExpectEquality(t, r.Register(rSP), want[m][0])
		test.ExpectEquality(t, r.Register(rLR), want[m][1])
	}
}

// TestFIQBanksR8ThroughR12SeparatelyFromEveryOtherMode pins down the one
// irregular corner of the register file: r8..r12 have exactly two shadow
// copies (FIQ's own, and the one every other mode shares), not seven.
func TestFIQBanksR8ThroughR12SeparatelyFromEveryOtherMode(t *testing.T) {
	var r registers
	r.reset()

	r.SetPrivilegeMode(System)
	for n := 8; n <= 12; n++ {
		r.SetRegister(n, uint32(0x50000000+n))
	}

	r.SetPrivilegeMode(FIQ)
	for n := 8; n <= 12; n++ {
		r.SetRegister(n, uint32(0xf0000000+n))
	}

	r.SetPrivilegeMode(IRQ)
	for n := 8; n <= 12; n++ {
		test.ExpectEquality(t, r.Register(n), uint32(0x50000000+n))
	}

	r.SetPrivilegeMode(FIQ)
	for n := 8; n <= 12; n++ {
		test.ExpectEquality(t, r.Register(n), uint32(0xf0000000+n))
	}
}

// TestSetPrivilegeModeToSameModeIsANoOp guards against a checkpoint/restore
// cycle firing when there is nothing to swap, which would otherwise
// overwrite the live bank with its own stale checkpoint.
func TestSetPrivilegeModeToSameModeIsANoOp(t *testing.T) {
	var r registers
	r.reset()

	r.SetPrivilegeMode(Supervisor)
	r.SetRegister(rSP, 0x77777777)
	r.SetPrivilegeMode(Supervisor)
	test.ExpectEquality(t, r.Register(rSP), uint32(0x77777777))
}

// TestUserRegisterReadsTheSharedShadowFromAnyPrivilegedMode exercises the
// LDM/STM S-bit's forced-user-bank access path: UserRegister and
// SetUserRegister must reach the User/System shadow of SP, LR and r8..r12
// without perturbing privilegeMode or the currently banked copies.
func TestUserRegisterReadsTheSharedShadowFromAnyPrivilegedMode(t *testing.T) {
	var r registers
	r.reset()

	r.SetPrivilegeMode(System)
	r.SetRegister(rSP, 0x99999999)
	r.SetRegister(8, 0x88888888)

	r.SetPrivilegeMode(IRQ)
	r.SetRegister(rSP, 0x11111111) // IRQ's own banked SP, must not alias User's

	test.ExpectEquality(t, r.UserRegister(rSP), uint32(0x99999999))
	test.ExpectEquality(t, r.UserRegister(8), uint32(0x88888888))
	test.ExpectEquality(t, r.Register(rSP), uint32(0x11111111))
	test.ExpectEquality(t, r.privilegeMode, IRQ)

	r.SetUserRegister(rLR, 0xabcdef01)
	r.SetPrivilegeMode(System)
	test.ExpectEquality(t, r.Register(rLR), uint32(0xabcdef01))
}

// TestSPSRIsBankedPerModeIndependentlyOfGPRs confirms the SPSR shadow
// follows the same checkpoint/restore discipline as the GPR banks, since
// SetPrivilegeMode swaps both in the same pass.
func TestSPSRIsBankedPerModeIndependentlyOfGPRs(t *testing.T) {
	var r registers
	r.reset()

	r.SetPrivilegeMode(IRQ)
	r.spsr = 0x000000d3 // arbitrary SPSR_irq value
	r.SetPrivilegeMode(Supervisor)
	r.spsr = 0x00000093 // arbitrary SPSR_svc value

	r.SetPrivilegeMode(IRQ)
	test.ExpectEquality(t, r.spsr, PSR(0x000000d3))

	r.SetPrivilegeMode(Supervisor)
	test.ExpectEquality(t, r.spsr, PSR(0x00000093))
}
