package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is one employee's attendance status for one calendar day.
// At most one record exists per (EmployeeID, Date) pair; Date is always
// normalized to a UTC day boundary.
type Schedule struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	HoursWorked *decimal.Decimal
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusWork     Status = "WORK"
	StatusWeekend  Status = "WEEKEND"
	StatusVacation Status = "VACATION"
	StatusSick     Status = "SICK"
	StatusAbsent   Status = "ABSENT"
)

var StatusValues = []string{
	string(StatusWork),
	string(StatusWeekend),
	string(StatusVacation),
	string(StatusSick),
	string(StatusAbsent),
}

// DayOf truncates t to its UTC day boundary.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first day of the month and the first day of
// the following month, both at UTC day boundaries.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
