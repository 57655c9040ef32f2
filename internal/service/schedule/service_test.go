package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/bivekigroup/staff-backend-go/internal/repository/memory"
	employeeService "github.com/bivekigroup/staff-backend-go/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (schedule.ScheduleService, employee.Employee) {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	store.PutOrganization(organization.Organization{ID: "org1", Name: "Biveki Group"})

	employeeRepo := memory.NewEmployeeRepository(store)
	empSvc := employeeService.NewEmployeeService(employeeRepo, memory.NewOrganizationRepository(store))
	emp, err := empSvc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName:      "Иван",
		LastName:       "Петров",
		Position:       "Инженер",
		Phone:          "+70000000000",
		HireDate:       "2024-01-15",
		OrganizationID: "org1",
	})
	require.NoError(t, err)

	svc := NewScheduleService(memory.NewScheduleRepository(store), employeeRepo)
	return svc, emp
}

func TestUpsertSchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates then overwrites the same day", func(t *testing.T) {
		svc, emp := newTestService(t)

		notes1 := "первая запись"
		first, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
			EmployeeID: emp.ID,
			Date:       "2024-02-10",
			Status:     "WORK",
			Notes:      &notes1,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, schedule.StatusWork, first.Status)

		notes2 := "вторая запись"
		second, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
			EmployeeID: emp.ID,
			Date:       "2024-02-10",
			Status:     "SICK",
			Notes:      &notes2,
		})
		require.NoError(t, err)

		// Same record updated in place, not a second row.
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, schedule.StatusSick, second.Status)
		require.NotNil(t, second.Notes)
		assert.Equal(t, "вторая запись", *second.Notes)

		records, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: emp.ID, Year: 2024, Month: 2})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, schedule.StatusSick, records[0].Status)
		require.NotNil(t, records[0].Notes)
		assert.Equal(t, "вторая запись", *records[0].Notes)
	})

	t.Run("normalizes timestamps to the day", func(t *testing.T) {
		svc, emp := newTestService(t)

		_, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
			EmployeeID: emp.ID,
			Date:       "2024-02-10T09:15:00Z",
			Status:     "WORK",
		})
		require.NoError(t, err)

		_, err = svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
			EmployeeID: emp.ID,
			Date:       "2024-02-10T18:45:00Z",
			Status:     "ABSENT",
		})
		require.NoError(t, err)

		records, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: emp.ID, Year: 2024, Month: 2})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2024-02-10", records[0].Date.Format("2006-01-02"))
		assert.Equal(t, schedule.StatusAbsent, records[0].Status)
	})

	t.Run("validation", func(t *testing.T) {
		svc, emp := newTestService(t)

		cases := []struct {
			name   string
			req    schedule.UpsertScheduleRequest
			fields []string
		}{
			{
				name:   "empty request",
				req:    schedule.UpsertScheduleRequest{},
				fields: []string{"employeeId", "date", "status"},
			},
			{
				name: "bad status",
				req: schedule.UpsertScheduleRequest{
					EmployeeID: emp.ID, Date: "2024-02-10", Status: "HOLIDAY",
				},
				fields: []string{"status"},
			},
			{
				name: "bad date",
				req: schedule.UpsertScheduleRequest{
					EmployeeID: emp.ID, Date: "10.02.2024", Status: "WORK",
				},
				fields: []string{"date"},
			},
			{
				name: "hours out of range",
				req: schedule.UpsertScheduleRequest{
					EmployeeID: emp.ID, Date: "2024-02-10", Status: "WORK",
					HoursWorked: floatPtr(25),
				},
				fields: []string{"hoursWorked"},
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := svc.UpsertSchedule(ctx, c.req)
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.ElementsMatch(t, c.fields, verrs.Fields())
			})
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
			EmployeeID: "no-such-id",
			Date:       "2024-02-10",
			Status:     "WORK",
		})
		assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
	})
}

// Concurrent writers for the same (employee, day) must end up with
// exactly one record.
func TestUpsertScheduleConcurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, emp := newTestService(t)

	const writers = 32
	statuses := []string{"WORK", "WEEKEND", "VACATION", "SICK", "ABSENT"}

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			notes := fmt.Sprintf("writer %d", i)
			_, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
				EmployeeID: emp.ID,
				Date:       "2024-02-10",
				Status:     statuses[i%len(statuses)],
				Notes:      &notes,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	records, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: emp.ID, Year: 2024, Month: 2})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("leap February bounds and ordering", func(t *testing.T) {
		svc, emp := newTestService(t)

		days := []string{"2024-02-29", "2024-02-01", "2024-02-15", "2024-01-31", "2024-03-01"}
		for _, day := range days {
			_, err := svc.UpsertSchedule(ctx, schedule.UpsertScheduleRequest{
				EmployeeID: emp.ID,
				Date:       day,
				Status:     "WORK",
			})
			require.NoError(t, err)
		}

		records, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: emp.ID, Year: 2024, Month: 2})
		require.NoError(t, err)

		got := make([]string, 0, len(records))
		for _, rec := range records {
			got = append(got, rec.Date.Format("2006-01-02"))
		}
		assert.Equal(t, []string{"2024-02-01", "2024-02-15", "2024-02-29"}, got)
	})

	t.Run("empty month", func(t *testing.T) {
		svc, emp := newTestService(t)

		records, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: emp.ID, Year: 2024, Month: 6})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("invalid query", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.GetMonth(ctx, schedule.MonthQuery{EmployeeID: "", Year: 2024, Month: 13})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.ElementsMatch(t, []string{"employeeId", "month"}, verrs.Fields())
	})
}

func floatPtr(f float64) *float64 { return &f }
