package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	"github.com/valecard/valecard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{db: db}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepository
var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		FullName:  m.FullName,
	}
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `
		SELECT id, company_id, full_name
		FROM employees
		WHERE id = $1;
	`
	var modelEmployee models.Employee
	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&modelEmployee.ID,
		&modelEmployee.CompanyID,
		&modelEmployee.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %d: %w", employeeID, err)
	}

	domainEmployee := toDomainEmployee(modelEmployee)
	return &domainEmployee, nil
}
