package stats

import "context"

type StatsRepository interface {
	GetSummary(ctx context.Context) (*Summary, error)
	GetHiresByMonth(ctx context.Context) ([]HireStat, error)
	GetTopPositions(ctx context.Context, limit int) ([]PositionStat, error)
	GetAttendance(ctx context.Context, r AttendanceRange) ([]AttendanceStat, error)
}

type StatsService interface {
	GetEmployeeStats(ctx context.Context) (*EmployeeStats, error)
}
