package postgresql

import (
	"context"
	"fmt"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/database"
)

type employeeDirectoryImpl struct {
	db *database.DB
}

func NewEmployeeDirectory(db *database.DB) employee.DirectoryRepository {
	return &employeeDirectoryImpl{db: db}
}

// ListByDepartment implements employee.DirectoryRepository.
func (e *employeeDirectoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	query := `
		SELECT id, full_name, department, designation, email, phone_number, hire_date, base_salary
		FROM employees
		WHERE department = $1 AND deleted_at IS NULL
		ORDER BY id
	`

	rows, err := e.db.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for department %s: %w", department, err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Department, &emp.Designation,
			&emp.Email, &emp.PhoneNumber, &emp.HireDate, &emp.BaseSalary,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// Departments implements employee.DirectoryRepository.
func (e *employeeDirectoryImpl) Departments(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT department
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY department
	`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department rows: %w", err)
	}

	return departments, nil
}

// Designations implements employee.DirectoryRepository.
func (e *employeeDirectoryImpl) Designations(ctx context.Context, department string) ([]string, error) {
	query := `
		SELECT DISTINCT designation
		FROM employees
		WHERE department = $1 AND deleted_at IS NULL
		ORDER BY designation
	`

	rows, err := e.db.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations for department %s: %w", department, err)
	}
	defer rows.Close()

	var designations []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan designation row: %w", err)
		}
		designations = append(designations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designation rows: %w", err)
	}

	return designations, nil
}
