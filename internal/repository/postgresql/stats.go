package postgresql

import (
	"context"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// GetSummary returns total, per-status counts and averages in a single
// scan of the employees table.
func (r *statsRepositoryImpl) GetSummary(ctx context.Context) (*stats.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'ACTIVE' THEN 1 ELSE 0 END), 0) AS active_count,
			COALESCE(SUM(CASE WHEN status = 'VACATION' THEN 1 ELSE 0 END), 0) AS vacation_count,
			COALESCE(SUM(CASE WHEN status = 'SICK' THEN 1 ELSE 0 END), 0) AS sick_count,
			COALESCE(SUM(CASE WHEN status = 'FIRED' THEN 1 ELSE 0 END), 0) AS fired_count,
			AVG(EXTRACT(YEAR FROM age(CURRENT_DATE, birth_date)))::float8 AS avg_age,
			AVG(salary)::float8 AS avg_salary
		FROM employees
	`

	var active, vacation, sick, fired int
	summary := stats.Summary{}
	err := q.QueryRow(ctx, query).Scan(
		&summary.Total, &active, &vacation, &sick, &fired,
		&summary.AvgAge, &summary.AvgSalary,
	)
	if err != nil {
		return nil, wrapStoreErr("get employee summary", err)
	}

	summary.ByStatus = []stats.StatusCount{
		{Status: employee.StatusActive, Count: active},
		{Status: employee.StatusVacation, Count: vacation},
		{Status: employee.StatusSick, Count: sick},
		{Status: employee.StatusFired, Count: fired},
	}
	return &summary, nil
}

// GetHiresByMonth groups hires by calendar month, oldest first.
func (r *statsRepositoryImpl) GetHiresByMonth(ctx context.Context) ([]stats.HireStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(hire_date, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM employees
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("get hires by month", err)
	}
	defer rows.Close()

	result := []stats.HireStat{}
	for rows.Next() {
		var h stats.HireStat
		if err := rows.Scan(&h.Month, &h.Count); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetTopPositions returns the most frequent positions, ties broken
// alphabetically.
func (r *statsRepositoryImpl) GetTopPositions(ctx context.Context, limit int) ([]stats.PositionStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT position, COUNT(*) AS count
		FROM employees
		GROUP BY position
		ORDER BY count DESC, position
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, wrapStoreErr("get top positions", err)
	}
	defer rows.Close()

	result := []stats.PositionStat{}
	for rows.Next() {
		var p stats.PositionStat
		if err := rows.Scan(&p.Position, &p.Count); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAttendance rolls schedule records up per day within [From, To).
func (r *statsRepositoryImpl) GetAttendance(ctx context.Context, rng stats.AttendanceRange) ([]stats.AttendanceStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			to_char(date, 'YYYY-MM-DD') AS day,
			COALESCE(SUM(CASE WHEN status = 'WORK' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status IN ('ABSENT', 'SICK') THEN 1 ELSE 0 END), 0) AS absent
		FROM employee_schedules
		WHERE date >= $1 AND date < $2
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, wrapStoreErr("get attendance rollup", err)
	}
	defer rows.Close()

	result := []stats.AttendanceStat{}
	for rows.Next() {
		var a stats.AttendanceStat
		if err := rows.Scan(&a.Date, &a.Present, &a.Absent); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
