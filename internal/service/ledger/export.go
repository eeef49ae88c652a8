package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/metrics"
)

// Export implements ledger.LedgerService. The document carries one
// header row and one row per employee on the current page: the fixed
// identity columns followed by one status-code column per working day,
// in calendar order. Zero rows is an explicit error rather than a
// header derived from a row that does not exist.
func (s *LedgerServiceImpl) Export(ctx context.Context, sessionID string, filter ledger.EntryFilter) (ledger.ExportDocument, error) {
	if err := filter.Validate(); err != nil {
		return ledger.ExportDocument{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ledger.ExportDocument{}, err
	}

	filtered := filterEmployees(session, filter)
	pageEmployees, _, _, err := s.paginate(filtered, filter)
	if err != nil {
		return ledger.ExportDocument{}, err
	}

	if len(pageEmployees) == 0 {
		return ledger.ExportDocument{}, ledger.ErrEmptyExport
	}

	header := []string{"EmpID", "Name", "Designation"}
	for _, day := range session.Days {
		header = append(header, ledger.DayKey(day))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return ledger.ExportDocument{}, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, emp := range pageEmployees {
		record := []string{emp.ID, emp.Name, emp.Designation}
		for _, day := range session.Days {
			entry, ok := session.Ledger.Entry(emp.ID, day)
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, entry.Status.Code())
		}
		if err := w.Write(record); err != nil {
			return ledger.ExportDocument{}, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ledger.ExportDocument{}, fmt.Errorf("failed to flush export: %w", err)
	}

	metrics.Exports.Inc()

	return ledger.ExportDocument{
		Filename: fmt.Sprintf("%s_attendance_%s_to_%s.csv",
			session.Department, session.FromMonth, session.ToMonth),
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}
