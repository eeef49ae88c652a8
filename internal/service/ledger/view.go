package ledger

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
)

// filterEmployees applies the view criteria over the full day range.
// An employee passes when id or name contains the search term
// (case-insensitive), the designation matches when supplied, and at
// least one of its entries holds the status filter when supplied.
func filterEmployees(session ledger.Session, filter ledger.EntryFilter) []employee.Employee {
	search := strings.ToLower(filter.Search)
	statusFilter := filter.StatusFilter()

	var out []employee.Employee
	for _, emp := range session.Employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.ID), search) &&
			!strings.Contains(strings.ToLower(emp.Name), search) {
			continue
		}
		if filter.Designation != "" && emp.Designation != filter.Designation {
			continue
		}
		if statusFilter != "" {
			matched := false
			for _, entry := range session.Ledger[emp.ID] {
				if entry.Status == statusFilter {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, emp)
	}
	return out
}

// paginate slices one 1-based page out of the filtered set. A page
// outside [1, totalPages] is a caller error and is never clamped;
// page 1 of an empty set is allowed so an empty filter result is not
// an error.
func (s *LedgerServiceImpl) paginate(employees []employee.Employee, filter ledger.EntryFilter) ([]employee.Employee, int, int, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	totalPages := int(math.Ceil(float64(len(employees)) / float64(pageSize)))
	if filter.Page > totalPages && !(filter.Page == 1 && totalPages == 0) {
		return nil, 0, 0, ledger.ErrPageOutOfRange
	}

	start := (filter.Page - 1) * pageSize
	end := start + pageSize
	if end > len(employees) {
		end = len(employees)
	}
	if start > len(employees) {
		start = len(employees)
	}
	return employees[start:end], totalPages, pageSize, nil
}

// ListEntries implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListEntries(ctx context.Context, sessionID string, filter ledger.EntryFilter) (ledger.ListEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return ledger.ListEntriesResponse{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.ListEntriesResponse{}, err
	}

	filtered := filterEmployees(session, filter)
	pageEmployees, totalPages, pageSize, err := s.paginate(filtered, filter)
	if err != nil {
		return ledger.ListEntriesResponse{}, err
	}

	days := make([]string, 0, len(session.Days))
	for _, day := range session.Days {
		days = append(days, ledger.DayKey(day))
	}

	rows := make([]ledger.EntryRowResponse, 0, len(pageEmployees))
	for _, emp := range pageEmployees {
		cells := make(map[string]ledger.EntryCell, len(days))
		for _, key := range days {
			entry := session.Ledger[emp.ID][key]
			cell := ledger.EntryCell{
				Status: string(entry.Status),
				Source: string(entry.Source),
			}
			if entry.Request != nil {
				cell.RequestState = string(entry.Request.State)
			}
			cells[key] = cell
		}
		rows = append(rows, ledger.EntryRowResponse{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Designation: emp.Designation,
			Entries:     cells,
		})
	}

	total := len(filtered)
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*pageSize+1, min(filter.Page*pageSize, total), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return ledger.ListEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      pageSize,
		TotalPages: totalPages,
		Showing:    showing,
		Days:       days,
		Rows:       rows,
	}, nil
}

// PendingRequests implements ledger.LedgerService. Scope is the
// current page only, matching what the approver panel renders; a
// request parked on another page does not appear until that page is
// visited. Documented limitation, not an oversight.
func (s *LedgerServiceImpl) PendingRequests(ctx context.Context, sessionID string, filter ledger.EntryFilter) (ledger.PendingRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return ledger.PendingRequestsResponse{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.PendingRequestsResponse{}, err
	}

	filtered := filterEmployees(session, filter)
	pageEmployees, _, _, err := s.paginate(filtered, filter)
	if err != nil {
		return ledger.PendingRequestsResponse{}, err
	}

	requests := []ledger.PendingRequestResponse{}
	for _, emp := range pageEmployees {
		for _, day := range session.Days {
			entry, ok := session.Ledger.Entry(emp.ID, day)
			if !ok || entry.Request == nil || entry.Request.State != ledger.RequestPending {
				continue
			}
			requests = append(requests, ledger.PendingRequestResponse{
				RequestID:    entry.Request.ID,
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Designation:  emp.Designation,
				Date:         ledger.DayKey(day),
				Reason:       entry.Request.Reason,
			})
		}
	}

	return ledger.PendingRequestsResponse{
		TotalCount: len(requests),
		Requests:   requests,
	}, nil
}

// Summary implements ledger.LedgerService. The tally spans the full
// filtered employee set and every working day, not just the visible
// page. One full scan per filter or ledger change is acceptable at
// console scale.
func (s *LedgerServiceImpl) Summary(ctx context.Context, sessionID string, filter ledger.EntryFilter) (ledger.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return ledger.SummaryResponse{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.SummaryResponse{}, err
	}

	var summary ledger.SummaryResponse
	for _, emp := range filterEmployees(session, filter) {
		for _, entry := range session.Ledger[emp.ID] {
			switch entry.Status {
			case ledger.StatusPresent:
				summary.Present++
			case ledger.StatusAbsent:
				summary.Absent++
			case ledger.StatusLeave:
				summary.Leave++
			case ledger.StatusMissing:
				summary.Missing++
			}
		}
	}
	summary.Total = summary.Present + summary.Absent + summary.Leave + summary.Missing

	return summary, nil
}
