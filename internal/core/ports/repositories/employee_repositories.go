package repositories

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
}

// EmployeeRepository is the full gateway contract for employees. Employees are
// never written by this core.
type EmployeeRepository interface {
	EmployeeReader
}
