package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// UpsertSchedule implements schedule.ScheduleService. The same day can
// be written any number of times; the last write wins and only one
// record per (employee, day) ever exists.
func (s *ScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.Schedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.Schedule{}, err
	}

	date, _ := validator.ParseFlexibleDate(req.Date)

	var hours *decimal.Decimal
	if req.HoursWorked != nil {
		d := decimal.NewFromFloat(*req.HoursWorked)
		hours = &d
	}

	rec := schedule.Schedule{
		EmployeeID:  req.EmployeeID,
		Date:        schedule.DayOf(date),
		Status:      schedule.Status(req.Status),
		HoursWorked: hours,
		Notes:       req.Notes,
	}

	saved, err := s.scheduleRepo.Upsert(ctx, rec)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.Schedule{}, err
		}
		return schedule.Schedule{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return saved, nil
}

// GetMonth implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetMonth(ctx context.Context, q schedule.MonthQuery) ([]schedule.Schedule, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	records, err := s.scheduleRepo.ListByMonth(ctx, q.EmployeeID, q.Year, q.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return records, nil
}
