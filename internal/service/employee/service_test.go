package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/bivekigroup/staff-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (employee.EmployeeService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.PutOrganization(organization.Organization{ID: "org1", Name: "Biveki Group"})
	svc := NewEmployeeService(memory.NewEmployeeRepository(store), memory.NewOrganizationRepository(store))
	return svc, store
}

func strPtr(s string) *string { return &s }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:      "Иван",
		LastName:       "Петров",
		Position:       "Инженер",
		Phone:          "+70000000000",
		HireDate:       "2024-01-15",
		OrganizationID: "org1",
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.CreateEmployee(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Иван", created.FirstName)
		assert.Equal(t, "Петров", created.LastName)
		assert.Equal(t, employee.StatusActive, created.Status)
		assert.Equal(t, "org1", created.OrganizationID)
		assert.Equal(t, "2024-01-15", created.HireDate.Format("2006-01-02"))
		assert.Nil(t, created.MiddleName)
		assert.Nil(t, created.Salary)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreateRequest()
		req.Status = strPtr("VACATION")

		created, err := svc.CreateEmployee(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, employee.StatusVacation, created.Status)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			FirstName:      "Иван",
			OrganizationID: "org1",
		})
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.ElementsMatch(t, []string{"lastName", "position", "phone", "hireDate"}, verrs.Fields())

		// Nothing was stored.
		employees, err := svc.ListEmployees(ctx, employee.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, employees)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreateRequest()
		req.HireDate = "15.01.2024"

		_, err := svc.CreateEmployee(ctx, req)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"hireDate"}, verrs.Fields())
	})

	t.Run("unknown organization", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreateRequest()
		req.OrganizationID = "org-missing"

		_, err := svc.CreateEmployee(ctx, req)
		assert.True(t, errors.Is(err, employee.ErrOrganizationNotFound))
	})
}

func TestGetEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetEmployee(ctx, "no-such-id")
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}

func TestListEmployeesFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.FirstName = "Анна"
	second.Status = strPtr("SICK")
	_, err = svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	all, err := svc.ListEmployees(ctx, employee.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)

	sick := employee.StatusSick
	filtered, err := svc.ListEmployees(ctx, employee.ListFilter{Status: &sick})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Анна", filtered[0].FirstName)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial update touches only the named fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.CreateEmployee(ctx, validCreateRequest())
		require.NoError(t, err)

		updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
			Position: strPtr("Старший инженер"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Старший инженер", updated.Position)
		assert.Equal(t, created.FirstName, updated.FirstName)
		assert.Equal(t, created.LastName, updated.LastName)
		assert.Equal(t, created.Phone, updated.Phone)
		assert.Equal(t, created.Status, updated.Status)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("clears optional field with empty string", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreateRequest()
		req.Department = strPtr("R&D")
		created, err := svc.CreateEmployee(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, created.Department)

		updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
			Department: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.Department)
	})

	t.Run("rejects clearing a required field", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.CreateEmployee(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
			FirstName: strPtr(""),
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"firstName"}, verrs.Fields())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.CreateEmployee(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
			Status: strPtr("RETIRED"),
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"status"}, verrs.Fields())
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.UpdateEmployee(ctx, "no-such-id", employee.UpdateEmployeeRequest{
			Position: strPtr("Инженер"),
		})
		assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))

	// Deleting again reports false without an error.
	deleted, err = svc.DeleteEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
