package employee

import "context"

// DirectoryRepository reads the employee master. Implementations are
// read-only: provisioning lives in the HR master system, not here.
type DirectoryRepository interface {
	// ListByDepartment retrieves every employee in a department,
	// ordered by employee ID.
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	// Departments lists the known department names.
	Departments(ctx context.Context) ([]string, error)

	// Designations lists the distinct designations within a department.
	Designations(ctx context.Context, department string) ([]string, error)
}
