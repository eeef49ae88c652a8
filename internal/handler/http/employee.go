package http

import (
	"net/http"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Designations(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	directory employee.DirectoryRepository
}

func NewEmployeeHandler(directory employee.DirectoryRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		directory: directory,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		response.BadRequest(w, "Query parameter 'department' is required", nil)
		return
	}

	employees, err := h.directory.ListByDepartment(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	response.Success(w, responses)
}

// Departments implements EmployeeHandler.
func (h *employeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.directory.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// Designations implements EmployeeHandler.
func (h *employeeHandlerImpl) Designations(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		response.BadRequest(w, "Query parameter 'department' is required", nil)
		return
	}

	designations, err := h.directory.Designations(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, designations)
}
