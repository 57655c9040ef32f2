package postgresql

import (
	"context"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const scheduleColumns = `id, employee_id, date, status, hours_worked, notes, created_at, updated_at`

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var rec schedule.Schedule
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
		&rec.HoursWorked, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements schedule.ScheduleRepository. The single INSERT ..
// ON CONFLICT statement rides on the (employee_id, date) unique index,
// so concurrent upserts for the same pair serialize in the database
// and can never leave two rows behind.
func (s *scheduleRepositoryImpl) Upsert(ctx context.Context, rec schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO employee_schedules (employee_id, date, status, hours_worked, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			hours_worked = EXCLUDED.hours_worked,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + scheduleColumns

	saved, err := scanSchedule(q.QueryRow(ctx, query,
		rec.EmployeeID, schedule.DayOf(rec.Date), rec.Status, rec.HoursWorked, rec.Notes,
	))
	if err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			return schedule.Schedule{}, employee.ErrEmployeeNotFound
		}
		// Cannot come from the conflict target above; guards against a
		// uniqueness failure on any other constraint.
		if isPgErr(err, pgUniqueViolation) {
			return schedule.Schedule{}, schedule.ErrDuplicateSchedule
		}
		return schedule.Schedule{}, wrapStoreErr("upsert schedule", err)
	}
	return saved, nil
}

// ListByMonth implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	start, end := schedule.MonthBounds(year, month)
	query := `
		SELECT ` + scheduleColumns + `
		FROM employee_schedules
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, wrapStoreErr("list schedules by month", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// ListByEmployee implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM employee_schedules
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, wrapStoreErr("list schedules by employee", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func collectSchedules(rows pgx.Rows) ([]schedule.Schedule, error) {
	records := []schedule.Schedule{}
	for rows.Next() {
		rec, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
