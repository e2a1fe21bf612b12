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

package prefs

const (
	defaultClock                      = 70.0
	defaultImmediate                  = true
	defaultAbortOnMemoryFault         = false
	defaultExtendedMemoryFaultLogging = false
	defaultStrictMSR                  = false
	defaultCycleLimit                 = 1500000
	defaultAbortOnIllegalInstruction  = false
	defaultDebugTrace                 = false
)

// ARM collects the preferences handed to the arm package. The arm package
// acts on StrictMSR, AbortOnIllegalInstruction and DebugTrace; it does not
// read Clock, Immediate, ExtendedMemoryFaultLogging or CycleLimit, and it
// stores AbortOnMemoryFault without acting on it. A nil *ARM is not valid;
// use NewARM to obtain one with sane defaults.
type ARM struct {
	// Clock is the notional clock speed of the CPU, in MHz. It governs how
	// Icycle/Scycle/Ncycle counts are converted into a duration by a host
	// that cares about wall-clock pacing; the CPU core itself only ever
	// counts cycles.
	Clock *Float

	// Immediate is carried for the host. The arm package does not read it:
	// Step and RunLoop accumulate cycles the same way whatever its value.
	Immediate *Bool

	// AbortOnMemoryFault is read into the CPU by arm.New (and by
	// updatePrefs), but no code path acts on it: the CPU neither stops nor
	// raises a data abort on a memory fault by itself.
	AbortOnMemoryFault *Bool

	// ExtendedMemoryFaultLogging is carried for the host. The arm package
	// does not read it and logs no memory faults.
	ExtendedMemoryFaultLogging *Bool

	// StrictMSR, when true, panics on an MSR write that targets the
	// undocumented ARMv4T s or x PSR field-mask bits instead of silently
	// dropping them, as a debug aid during development.
	StrictMSR *Bool

	// CycleLimit is carried for the host. RunLoop does not consult it: it
	// returns only once cycles reaches nextEvent, so a program that never
	// reaches its deadline is not force-yielded.
	CycleLimit *Int

	// AbortOnIllegalInstruction controls whether hitting an ILL dispatch
	// slot panics (useful in tests, where an illegal instruction usually
	// means a decode-table bug) or merely invokes
	// InterruptHandler.HitIllegal and continues, which is the default,
	// host-mediated failure model.
	AbortOnIllegalInstruction *Bool

	// DebugTrace, when true, logs exception entries via the CPU's logger.
	// Mode changes made outside exception entry are not logged.
	DebugTrace *Bool
}

// NewARM returns an ARM preferences set populated with default values.
func NewARM() *ARM {
	return &ARM{
		Clock:                      NewFloat(defaultClock),
		Immediate:                  NewBool(defaultImmediate),
		AbortOnMemoryFault:         NewBool(defaultAbortOnMemoryFault),
		ExtendedMemoryFaultLogging: NewBool(defaultExtendedMemoryFaultLogging),
		StrictMSR:                  NewBool(defaultStrictMSR),
		CycleLimit:                 NewInt(defaultCycleLimit),
		AbortOnIllegalInstruction:  NewBool(defaultAbortOnIllegalInstruction),
		DebugTrace:                 NewBool(defaultDebugTrace),
	}
}
