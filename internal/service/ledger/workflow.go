package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/metrics"
)

// resolveRequest loads the entry named by the decision and checks the
// workflow precondition: the entry must hold a PENDING request.
func (s *LedgerServiceImpl) resolveRequest(ctx context.Context, sessionID string, req ledger.DecisionRequest) (ledger.Session, time.Time, error) {
	if err := req.Validate(); err != nil {
		return ledger.Session{}, time.Time{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.Session{}, time.Time{}, err
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ledger.Session{}, time.Time{}, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	entry, ok := session.Ledger.Entry(req.EmployeeID, day)
	if !ok {
		return ledger.Session{}, time.Time{}, ledger.ErrEntryNotFound
	}

	if entry.Request == nil || entry.Request.State != ledger.RequestPending {
		return ledger.Session{}, time.Time{}, ledger.ErrInvalidTransition
	}

	return session, day, nil
}

// Approve implements ledger.LedgerService. The whole ledger is cloned
// before the mutation so readers holding the previous snapshot never
// see a half-applied transition.
func (s *LedgerServiceImpl) Approve(ctx context.Context, sessionID string, req ledger.DecisionRequest) (ledger.EntryResponse, error) {
	session, day, err := s.resolveRequest(ctx, sessionID, req)
	if err != nil {
		return ledger.EntryResponse{}, err
	}

	next := session.Ledger.Clone()
	key := ledger.DayKey(day)
	entry := next[req.EmployeeID][key]
	entry.Status = ledger.StatusPresent
	entry.Source = ledger.SourceManualCorrection
	entry.Request = nil
	next[req.EmployeeID][key] = entry

	session.Ledger = next
	if err := s.sessions.Replace(ctx, session); err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to store approved ledger: %w", err)
	}

	metrics.CorrectionApprovals.Inc()

	return mapEntryToResponse(entry), nil
}

// Reject implements ledger.LedgerService. The request object is kept
// on the entry with state REJECTED so the audit trail survives, but it
// is no longer actionable.
func (s *LedgerServiceImpl) Reject(ctx context.Context, sessionID string, req ledger.DecisionRequest) (ledger.EntryResponse, error) {
	session, day, err := s.resolveRequest(ctx, sessionID, req)
	if err != nil {
		return ledger.EntryResponse{}, err
	}

	next := session.Ledger.Clone()
	key := ledger.DayKey(day)
	entry := next[req.EmployeeID][key]
	entry.Request.State = ledger.RequestRejected
	next[req.EmployeeID][key] = entry

	session.Ledger = next
	if err := s.sessions.Replace(ctx, session); err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to store rejected ledger: %w", err)
	}

	metrics.CorrectionRejections.Inc()

	return mapEntryToResponse(entry), nil
}

func mapEntryToResponse(entry ledger.Entry) ledger.EntryResponse {
	resp := ledger.EntryResponse{
		EmployeeID: entry.EmployeeID,
		Date:       ledger.DayKey(entry.Day),
		Status:     string(entry.Status),
		Source:     string(entry.Source),
	}
	if entry.Request != nil {
		resp.RequestState = string(entry.Request.State)
		resp.Reason = entry.Request.Reason
	}
	return resp
}
