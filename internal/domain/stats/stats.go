package stats

import (
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
)

// EmployeeStats is the dashboard summary, recomputed from the stores
// on every call.
type EmployeeStats struct {
	Total        int
	ByStatus     []StatusCount
	AvgAge       *float64
	AvgSalary    *float64
	HireByMonth  []HireStat
	TopPositions []PositionStat
	Attendance   []AttendanceStat
}

type StatusCount struct {
	Status employee.Status
	Count  int
}

// HireStat counts hires for one "YYYY-MM" month.
type HireStat struct {
	Month string
	Count int
}

type PositionStat struct {
	Position string
	Count    int
}

// AttendanceStat is a per-day rollup over schedule records: WORK counts
// as present, ABSENT and SICK as absent.
type AttendanceStat struct {
	Date    string
	Present int
	Absent  int
}

// Summary holds the aggregates that come out of a single scan of the
// employee collection.
type Summary struct {
	Total     int
	ByStatus  []StatusCount
	AvgAge    *float64
	AvgSalary *float64
}

type AttendanceRange struct {
	From time.Time
	To   time.Time
}
