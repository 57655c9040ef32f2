package memory

import (
	"context"
	"sort"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/google/uuid"
)

type scheduleRepository struct {
	store *Store
}

func NewScheduleRepository(store *Store) schedule.ScheduleRepository {
	return &scheduleRepository{store: store}
}

// Upsert implements schedule.ScheduleRepository. The store lock makes
// the check-then-write atomic, so two concurrent upserts for the same
// (employee, day) can never both insert.
func (r *scheduleRepository) Upsert(ctx context.Context, rec schedule.Schedule) (schedule.Schedule, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !r.hasEmployee(rec.EmployeeID) {
		return schedule.Schedule{}, employee.ErrEmployeeNotFound
	}

	day := schedule.DayOf(rec.Date)
	key := day.Format(dayKeyFormat)
	now := time.Now().UTC()

	byDay, ok := s.schedules[rec.EmployeeID]
	if !ok {
		byDay = make(map[string]schedule.Schedule)
		s.schedules[rec.EmployeeID] = byDay
	}

	if existing, ok := byDay[key]; ok {
		existing.Status = rec.Status
		existing.HoursWorked = rec.HoursWorked
		existing.Notes = rec.Notes
		existing.UpdatedAt = now
		byDay[key] = existing
		return existing, nil
	}

	rec.ID = uuid.NewString()
	rec.Date = day
	rec.CreatedAt = now
	rec.UpdatedAt = now
	byDay[key] = rec
	return rec, nil
}

// ListByMonth implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByMonth(ctx context.Context, employeeID string, year, month int) ([]schedule.Schedule, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := schedule.MonthBounds(year, month)

	result := []schedule.Schedule{}
	for _, rec := range s.schedules[employeeID] {
		if !rec.Date.Before(start) && rec.Date.Before(end) {
			result = append(result, rec)
		}
	}
	sortByDate(result)
	return result, nil
}

// ListByEmployee implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []schedule.Schedule{}
	for _, rec := range s.schedules[employeeID] {
		result = append(result, rec)
	}
	sortByDate(result)
	return result, nil
}

func (r *scheduleRepository) hasEmployee(id string) bool {
	for i := range r.store.employees {
		if r.store.employees[i].ID == id {
			return true
		}
	}
	return false
}

func sortByDate(records []schedule.Schedule) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
