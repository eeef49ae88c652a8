package employee

import "errors"

// Employee directory errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDepartmentUnknown = errors.New("unknown department")
)
