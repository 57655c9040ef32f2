package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule record not found")
	ErrDuplicateSchedule = errors.New("schedule record already exists for this employee and date")
)
