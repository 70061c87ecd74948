package employee

import (
	"context"
)

type EmployeeRepository interface {
	// GetByID returns one employee
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns every active employee
	ListActive(ctx context.Context) ([]Employee, error)
}
