package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	Update(ctx context.Context, id string, upd Update) (Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
