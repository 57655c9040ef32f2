package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
)

const (
	topPositionsLimit = 5
	attendanceDays    = 7
)

// StatsServiceImpl derives the dashboard summary from the stores on
// every call; nothing is maintained incrementally.
type StatsServiceImpl struct {
	statsRepo stats.StatsRepository
	now       func() time.Time
}

func NewStatsService(statsRepo stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// GetEmployeeStats implements stats.StatsService.
func (s *StatsServiceImpl) GetEmployeeStats(ctx context.Context) (*stats.EmployeeStats, error) {
	summary, err := s.statsRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee summary: %w", err)
	}

	hires, err := s.statsRepo.GetHiresByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get hires by month: %w", err)
	}

	positions, err := s.statsRepo.GetTopPositions(ctx, topPositionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top positions: %w", err)
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	attendance, err := s.statsRepo.GetAttendance(ctx, stats.AttendanceRange{
		From: today.AddDate(0, 0, -(attendanceDays - 1)),
		To:   today.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance rollup: %w", err)
	}

	return &stats.EmployeeStats{
		Total:        summary.Total,
		ByStatus:     summary.ByStatus,
		AvgAge:       summary.AvgAge,
		AvgSalary:    summary.AvgSalary,
		HireByMonth:  hires,
		TopPositions: positions,
		Attendance:   attendance,
	}, nil
}
