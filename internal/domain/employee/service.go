package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context, filter ListFilter) ([]Employee, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, id string) (bool, error)
}
