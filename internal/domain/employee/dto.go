package employee

// ========================================
// EMPLOYEE DIRECTORY DTOs
// ========================================

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	HireDate    string `json:"hire_date,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Department:  e.Department,
		Designation: e.Designation,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
	}
	if !e.HireDate.IsZero() {
		resp.HireDate = e.HireDate.Format("2006-01-02")
	}
	return resp
}
