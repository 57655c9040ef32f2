package schedule

import (
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	EmployeeID  string   `json:"employeeId"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	HoursWorked *float64 `json:"hoursWorked,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	} else if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of WORK, WEEKEND, VACATION, SICK, ABSENT"})
	}
	if r.HoursWorked != nil && (*r.HoursWorked < 0 || *r.HoursWorked > 24) {
		errs = append(errs, validator.ValidationError{Field: "hoursWorked", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthQuery struct {
	EmployeeID string
	Year       int
	Month      int
}

func (q MonthQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if q.Year < 1900 || q.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if q.Month < 1 || q.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
