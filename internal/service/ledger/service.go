package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/metrics"
)

type LedgerServiceImpl struct {
	sessions  ledger.SessionRepository
	directory employee.DirectoryRepository
	source    ledger.AttendanceSource
	pageSize  int
}

func NewLedgerService(
	sessions ledger.SessionRepository,
	directory employee.DirectoryRepository,
	source ledger.AttendanceSource,
	pageSize int,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		sessions:  sessions,
		directory: directory,
		source:    source,
		pageSize:  pageSize,
	}
}

// BuildSession implements ledger.LedgerService.
func (s *LedgerServiceImpl) BuildSession(ctx context.Context, req ledger.BuildSessionRequest) (ledger.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.SessionResponse{}, err
	}

	fromMonth, err := ledger.ParseMonth(req.FromMonth)
	if err != nil {
		return ledger.SessionResponse{}, err
	}
	toMonth, err := ledger.ParseMonth(req.ToMonth)
	if err != nil {
		return ledger.SessionResponse{}, err
	}

	// An inverted range is not an error by policy, but it is almost
	// always a range-picker defect upstream, so make it visible.
	if fromMonth.After(toMonth) {
		slog.Warn("inverted month range produces no working days",
			"from_month", req.FromMonth,
			"to_month", req.ToMonth,
		)
	}

	days := ledger.BuildWorkingDays(fromMonth, toMonth)

	employees, err := s.directory.ListByDepartment(ctx, req.Department)
	if err != nil {
		return ledger.SessionResponse{}, fmt.Errorf("failed to load department roster: %w", err)
	}

	session := ledger.Session{
		ID:         uuid.NewString(),
		Department: req.Department,
		FromMonth:  fromMonth,
		ToMonth:    toMonth,
		Employees:  employees,
		Days:       days,
		Ledger:     s.generateLedger(employees, days),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return ledger.SessionResponse{}, fmt.Errorf("failed to save ledger session: %w", err)
	}

	metrics.SessionsBuilt.Inc()

	return mapSessionToResponse(session), nil
}

// generateLedger assigns one status to every (employee, day) pair and
// seeds a pending correction request on every MISSING entry. It is a
// full rebuild: nothing from any previous ledger survives.
func (s *LedgerServiceImpl) generateLedger(employees []employee.Employee, days []time.Time) ledger.Ledger {
	led := make(ledger.Ledger, len(employees))
	for _, emp := range employees {
		row := make(map[string]ledger.Entry, len(days))
		for _, day := range days {
			entry := ledger.Entry{
				EmployeeID: emp.ID,
				Day:        day,
				Status:     s.source.Draw(emp.ID, day),
			}
			if entry.Status == ledger.StatusMissing {
				entry.Request = &ledger.CorrectionRequest{
					ID:     uuid.NewString(),
					State:  ledger.RequestPending,
					Reason: ledger.DefaultRequestReason,
				}
			}
			row[ledger.DayKey(day)] = entry
		}
		led[emp.ID] = row
	}
	return led
}

// GetSession implements ledger.LedgerService.
func (s *LedgerServiceImpl) GetSession(ctx context.Context, sessionID string) (ledger.SessionResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.SessionResponse{}, err
	}
	return mapSessionToResponse(session), nil
}

// DeleteSession implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func mapSessionToResponse(session ledger.Session) ledger.SessionResponse {
	days := make([]string, 0, len(session.Days))
	for _, day := range session.Days {
		days = append(days, ledger.DayKey(day))
	}
	return ledger.SessionResponse{
		ID:            session.ID,
		Department:    session.Department,
		FromMonth:     session.FromMonth.String(),
		ToMonth:       session.ToMonth.String(),
		EmployeeCount: len(session.Employees),
		WorkingDays:   days,
		CreatedAt:     session.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
