package ledger

import (
	"github.com/hrconsole/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// LEDGER DTOs
// ========================================

type BuildSessionRequest struct {
	Department string `json:"department"`
	FromMonth  string `json:"from_month"`
	ToMonth    string `json:"to_month"`
}

func (r *BuildSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.FromMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_month",
			Message: "from_month is required",
		})
	} else if !validator.IsValidMonth(r.FromMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_month",
			Message: "from_month must be in YYYY-MM format",
		})
	}

	if validator.IsEmpty(r.ToMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_month",
			Message: "to_month is required",
		})
	} else if !validator.IsValidMonth(r.ToMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_month",
			Message: "to_month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EntryFilter carries the view-layer criteria. Empty strings mean
// "no filter". Page is 1-based; PageSize falls back to the configured
// default when zero.
type EntryFilter struct {
	Search      string
	Designation string
	Status      string
	Page        int
	PageSize    int
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be 1 or greater",
		})
	}

	if f.Status != "" {
		if _, ok := ParseStatus(f.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of PRESENT, ABSENT, LEAVE, MISSING (or P/A/L/M)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusFilter returns the typed status, or "" when unfiltered.
func (f *EntryFilter) StatusFilter() Status {
	if f.Status == "" {
		return ""
	}
	s, _ := ParseStatus(f.Status)
	return s
}

type DecisionRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type SessionResponse struct {
	ID            string   `json:"id"`
	Department    string   `json:"department"`
	FromMonth     string   `json:"from_month"`
	ToMonth       string   `json:"to_month"`
	EmployeeCount int      `json:"employee_count"`
	WorkingDays   []string `json:"working_days"`
	CreatedAt     string   `json:"created_at"`
}

// EntryCell is one day's cell in an employee's row.
type EntryCell struct {
	Status       string `json:"status"`
	Source       string `json:"source,omitempty"`
	RequestState string `json:"request_state,omitempty"`
}

type EntryRowResponse struct {
	EmployeeID  string               `json:"employee_id"`
	Name        string               `json:"name"`
	Designation string               `json:"designation"`
	Entries     map[string]EntryCell `json:"entries"`
}

type ListEntriesResponse struct {
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Days       []string           `json:"days"`
	Rows       []EntryRowResponse `json:"rows"`
}

type PendingRequestResponse struct {
	RequestID    string `json:"request_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Designation  string `json:"designation"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`
}

type PendingRequestsResponse struct {
	TotalCount int                      `json:"total_count"`
	Requests   []PendingRequestResponse `json:"requests"`
}

type EntryResponse struct {
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Source       string `json:"source,omitempty"`
	RequestState string `json:"request_state,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// SummaryResponse is the aggregate tally across the full filtered
// employee set and every working day, keyed by status.
type SummaryResponse struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Missing int `json:"missing"`
	Total   int `json:"total"`
}

// ExportDocument is a rendered delimited-text export plus the filename
// the download should carry.
type ExportDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}
