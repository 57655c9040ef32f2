package schedule

import "context"

type ScheduleRepository interface {
	// Upsert inserts the record or, when one already exists for the
	// same (EmployeeID, Date), updates it in place. Implementations
	// must enforce the pair uniqueness atomically, not read-then-write.
	Upsert(ctx context.Context, rec Schedule) (Schedule, error)
	ListByMonth(ctx context.Context, employeeID string, year, month int) ([]Schedule, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Schedule, error)
}

type ScheduleService interface {
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (Schedule, error)
	GetMonth(ctx context.Context, q MonthQuery) ([]Schedule, error)
}
