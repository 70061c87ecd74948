package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, joining_date, saturday_policy, is_active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	var policy string
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.JoiningDate, &policy, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	emp.SaturdayPolicy = employee.ResolveSaturdayPolicy(policy)
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, joining_date, saturday_policy, is_active,
			   created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var policy string
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Email, &emp.JoiningDate, &policy, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.SaturdayPolicy = employee.ResolveSaturdayPolicy(policy)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
