package memory

import (
	"context"
	"sort"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
)

type statsRepository struct {
	store *Store
}

func NewStatsRepository(store *Store) stats.StatsRepository {
	return &statsRepository{store: store}
}

// GetSummary implements stats.StatsRepository.
func (r *statsRepository) GetSummary(ctx context.Context) (*stats.Summary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[employee.Status]int{}
	var ageSum float64
	var ageCount int
	var salarySum float64
	var salaryCount int

	now := time.Now().UTC()
	for i := range s.employees {
		emp := &s.employees[i]
		counts[emp.Status]++
		if emp.BirthDate != nil {
			ageSum += float64(fullYearsBetween(*emp.BirthDate, now))
			ageCount++
		}
		if emp.Salary != nil {
			salarySum += emp.Salary.InexactFloat64()
			salaryCount++
		}
	}

	summary := stats.Summary{
		Total: len(s.employees),
		ByStatus: []stats.StatusCount{
			{Status: employee.StatusActive, Count: counts[employee.StatusActive]},
			{Status: employee.StatusVacation, Count: counts[employee.StatusVacation]},
			{Status: employee.StatusSick, Count: counts[employee.StatusSick]},
			{Status: employee.StatusFired, Count: counts[employee.StatusFired]},
		},
	}
	if ageCount > 0 {
		avg := ageSum / float64(ageCount)
		summary.AvgAge = &avg
	}
	if salaryCount > 0 {
		avg := salarySum / float64(salaryCount)
		summary.AvgSalary = &avg
	}
	return &summary, nil
}

// GetHiresByMonth implements stats.StatsRepository.
func (r *statsRepository) GetHiresByMonth(ctx context.Context) ([]stats.HireStat, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for i := range s.employees {
		counts[s.employees[i].HireDate.Format("2006-01")]++
	}

	result := []stats.HireStat{}
	for month, count := range counts {
		result = append(result, stats.HireStat{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// GetTopPositions implements stats.StatsRepository.
func (r *statsRepository) GetTopPositions(ctx context.Context, limit int) ([]stats.PositionStat, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for i := range s.employees {
		counts[s.employees[i].Position]++
	}

	result := []stats.PositionStat{}
	for position, count := range counts {
		result = append(result, stats.PositionStat{Position: position, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Position < result[j].Position
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// GetAttendance implements stats.StatsRepository.
func (r *statsRepository) GetAttendance(ctx context.Context, rng stats.AttendanceRange) ([]stats.AttendanceStat, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	type rollup struct{ present, absent int }
	days := map[string]*rollup{}
	for _, byDay := range s.schedules {
		for _, rec := range byDay {
			if rec.Date.Before(rng.From) || !rec.Date.Before(rng.To) {
				continue
			}
			key := rec.Date.Format(dayKeyFormat)
			if days[key] == nil {
				days[key] = &rollup{}
			}
			switch rec.Status {
			case "WORK":
				days[key].present++
			case "ABSENT", "SICK":
				days[key].absent++
			}
		}
	}

	result := []stats.AttendanceStat{}
	for day, r := range days {
		result = append(result, stats.AttendanceStat{Date: day, Present: r.present, Absent: r.absent})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// fullYearsBetween counts completed years from birth to now.
func fullYearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
