package ledger

import (
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
)

// Status is the per-day classification of a ledger entry.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
	StatusMissing Status = "MISSING"
)

// Code returns the single-letter status code used in tabular exports.
func (s Status) Code() string {
	switch s {
	case StatusPresent:
		return "P"
	case StatusAbsent:
		return "A"
	case StatusLeave:
		return "L"
	case StatusMissing:
		return "M"
	}
	return ""
}

// ParseStatus accepts either the full status name or its export code.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case string(StatusPresent), "P":
		return StatusPresent, true
	case string(StatusAbsent), "A":
		return StatusAbsent, true
	case string(StatusLeave), "L":
		return StatusLeave, true
	case string(StatusMissing), "M":
		return StatusMissing, true
	}
	return "", false
}

// Source records how an entry got its status. Empty means the entry
// came straight from the attendance source at generation time.
type Source string

const SourceManualCorrection Source = "MANUAL_CORRECTION"

type RequestState string

const (
	RequestPending  RequestState = "PENDING"
	RequestApproved RequestState = "APPROVED"
	RequestRejected RequestState = "REJECTED"
)

// DefaultRequestReason seeds the correction request attached to a
// MISSING entry at generation time.
const DefaultRequestReason = "Network issue"

// CorrectionRequest is the operator-actionable claim that a MISSING
// entry should be reclassified. At most one exists per entry.
type CorrectionRequest struct {
	ID     string
	State  RequestState
	Reason string
}

// Entry is the attendance record for one employee on one working day.
// Request is non-nil only while Status is MISSING; a rejected request
// is retained for audit but is no longer actionable.
type Entry struct {
	EmployeeID string
	Day        time.Time
	Status     Status
	Source     Source
	Request    *CorrectionRequest
}

// DayKey formats a working day as the map key used throughout the ledger.
func DayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Ledger maps employee ID to working-day key to entry. It is rebuilt
// wholesale whenever the employee set or the month range changes; the
// workflow replaces it with a mutated copy, never edits it in place.
type Ledger map[string]map[string]Entry

// Entry looks up the record for one (employee, day) pair.
func (l Ledger) Entry(employeeID string, day time.Time) (Entry, bool) {
	row, ok := l[employeeID]
	if !ok {
		return Entry{}, false
	}
	e, ok := row[DayKey(day)]
	return e, ok
}

// Clone deep-copies the ledger, including request objects, so a
// mutation never leaks into a snapshot a reader already holds.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for empID, row := range l {
		outRow := make(map[string]Entry, len(row))
		for key, e := range row {
			if e.Request != nil {
				req := *e.Request
				e.Request = &req
			}
			outRow[key] = e
		}
		out[empID] = outRow
	}
	return out
}

// Session is one operator selection: a department plus a month range,
// with the calendar, roster and ledger derived from it. It lives only
// in memory and is discarded when the selection changes.
type Session struct {
	ID         string
	Department string
	FromMonth  Month
	ToMonth    Month
	Employees  []employee.Employee
	Days       []time.Time
	Ledger     Ledger
	CreatedAt  time.Time
}
