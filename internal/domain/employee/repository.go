package employee

import "context"

type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
}
