package graphql

import (
	"context"
	"encoding/json"
	"testing"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/repository/memory"
	employeeService "github.com/bivekigroup/staff-backend-go/internal/service/employee"
	scheduleService "github.com/bivekigroup/staff-backend-go/internal/service/schedule"
	statsService "github.com/bivekigroup/staff-backend-go/internal/service/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchema(t *testing.T) *graphqlgo.Schema {
	t.Helper()

	store := memory.NewStore()
	store.PutOrganization(organization.Organization{ID: "org1", Name: "Biveki Group"})

	employeeRepo := memory.NewEmployeeRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	orgRepo := memory.NewOrganizationRepository(store)
	statsRepo := memory.NewStatsRepository(store)

	resolver := NewResolver(
		employeeService.NewEmployeeService(employeeRepo, orgRepo),
		scheduleService.NewScheduleService(scheduleRepo, employeeRepo),
		statsService.NewStatsService(statsRepo),
		employeeRepo,
		scheduleRepo,
		orgRepo,
	)
	return NewSchema(resolver)
}

// exec runs a query and decodes the data payload into out. It fails the
// test on any GraphQL error.
func exec(t *testing.T, schema *graphqlgo.Schema, query string, vars map[string]interface{}, out interface{}) {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	require.Empty(t, resp.Errors, "unexpected GraphQL errors: %+v", resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

const createEmployeeMutation = `
	mutation($input: CreateEmployeeInput!) {
		createEmployee(input: $input) {
			employee {
				id firstName lastName position phone status hireDate organizationId
			}
		}
	}`

func createTestEmployee(t *testing.T, schema *graphqlgo.Schema) string {
	t.Helper()
	var data struct {
		CreateEmployee struct {
			Employee struct {
				ID string
			}
		}
	}
	exec(t, schema, createEmployeeMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"firstName":      "Иван",
			"lastName":       "Петров",
			"position":       "Инженер",
			"phone":          "+70000000000",
			"hireDate":       "2024-01-15",
			"organizationId": "org1",
		},
	}, &data)
	require.NotEmpty(t, data.CreateEmployee.Employee.ID)
	return data.CreateEmployee.Employee.ID
}

// The full lifecycle: hire, record a sick day twice, fire the record
// off, confirm nothing is left behind.
func TestEmployeeLifecycle(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)

	var created struct {
		CreateEmployee struct {
			Employee struct {
				ID             string
				FirstName      string
				LastName       string
				Position       string
				Phone          string
				Status         string
				HireDate       string
				OrganizationID string
			}
		}
	}
	exec(t, schema, createEmployeeMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"firstName":      "Иван",
			"lastName":       "Петров",
			"position":       "Инженер",
			"phone":          "+70000000000",
			"hireDate":       "2024-01-15",
			"organizationId": "org1",
		},
	}, &created)

	emp := created.CreateEmployee.Employee
	require.NotEmpty(t, emp.ID)
	assert.Equal(t, "Иван", emp.FirstName)
	assert.Equal(t, "Петров", emp.LastName)
	assert.Equal(t, "ACTIVE", emp.Status)
	assert.Equal(t, "org1", emp.OrganizationID)
	assert.Equal(t, "2024-01-15T00:00:00Z", emp.HireDate)

	// Writing the same day twice must leave a single record carrying
	// the second write's values.
	scheduleMutation := `
		mutation($input: UpdateScheduleInput!) {
			updateEmployeeSchedule(input: $input)
		}`
	for _, notes := range []string{"болен, первая запись", "болен, уточнение"} {
		var ok struct {
			UpdateEmployeeSchedule bool
		}
		exec(t, schema, scheduleMutation, map[string]interface{}{
			"input": map[string]interface{}{
				"employeeId": emp.ID,
				"date":       "2024-02-10",
				"status":     "SICK",
				"notes":      notes,
			},
		}, &ok)
		assert.True(t, ok.UpdateEmployeeSchedule)
	}

	var month struct {
		EmployeeSchedule []struct {
			Date       string
			Status     string
			Notes      *string
			EmployeeID string
		}
	}
	exec(t, schema, `
		query($id: ID!) {
			employeeSchedule(employeeId: $id, year: 2024, month: 2) {
				date status notes employeeId
			}
		}`, map[string]interface{}{"id": emp.ID}, &month)

	require.Len(t, month.EmployeeSchedule, 1)
	rec := month.EmployeeSchedule[0]
	assert.Equal(t, "2024-02-10T00:00:00Z", rec.Date)
	assert.Equal(t, "SICK", rec.Status)
	assert.Equal(t, emp.ID, rec.EmployeeID)
	require.NotNil(t, rec.Notes)
	assert.Equal(t, "болен, уточнение", *rec.Notes)

	var deleted struct {
		DeleteEmployee bool
	}
	deleteMutation := `mutation($id: ID!) { deleteEmployee(id: $id) }`
	exec(t, schema, deleteMutation, map[string]interface{}{"id": emp.ID}, &deleted)
	assert.True(t, deleted.DeleteEmployee)

	// A second delete is a no-op.
	exec(t, schema, deleteMutation, map[string]interface{}{"id": emp.ID}, &deleted)
	assert.False(t, deleted.DeleteEmployee)

	var lookup struct {
		Employee *struct {
			ID string
		}
	}
	exec(t, schema, `query($id: ID!) { employee(id: $id) { id } }`,
		map[string]interface{}{"id": emp.ID}, &lookup)
	assert.Nil(t, lookup.Employee)
}

func TestUpdateEmployeeMutation(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)
	id := createTestEmployee(t, schema)

	var updated struct {
		UpdateEmployee struct {
			Employee struct {
				FirstName string
				Position  string
				Status    string
			}
		}
	}
	exec(t, schema, `
		mutation($id: ID!, $input: UpdateEmployeeInput!) {
			updateEmployee(id: $id, input: $input) {
				employee { firstName position status }
			}
		}`, map[string]interface{}{
		"id": id,
		"input": map[string]interface{}{
			"position": "Старший инженер",
			"status":   "VACATION",
		},
	}, &updated)

	assert.Equal(t, "Иван", updated.UpdateEmployee.Employee.FirstName)
	assert.Equal(t, "Старший инженер", updated.UpdateEmployee.Employee.Position)
	assert.Equal(t, "VACATION", updated.UpdateEmployee.Employee.Status)
}

func TestEmployeesStatusFilter(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)
	createTestEmployee(t, schema)

	var second struct {
		CreateEmployee struct {
			Employee struct{ ID string }
		}
	}
	exec(t, schema, createEmployeeMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"firstName":      "Анна",
			"lastName":       "Сидорова",
			"position":       "Дизайнер",
			"phone":          "+70000000001",
			"hireDate":       "2024-03-01",
			"status":         "SICK",
			"organizationId": "org1",
		},
	}, &second)

	var all struct {
		Employees []struct{ FirstName string }
	}
	exec(t, schema, `{ employees { firstName } }`, nil, &all)
	assert.Len(t, all.Employees, 2)

	var sick struct {
		Employees []struct{ FirstName string }
	}
	exec(t, schema, `{ employees(status: SICK) { firstName } }`, nil, &sick)
	require.Len(t, sick.Employees, 1)
	assert.Equal(t, "Анна", sick.Employees[0].FirstName)
}

func TestOrganizationsWithNestedEmployees(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)
	id := createTestEmployee(t, schema)

	var data struct {
		Organizations []struct {
			ID        string
			Name      string
			Employees []struct{ ID string }
		}
	}
	exec(t, schema, `{ organizations { id name employees { id } } }`, nil, &data)

	require.Len(t, data.Organizations, 1)
	org := data.Organizations[0]
	assert.Equal(t, "org1", org.ID)
	assert.Equal(t, "Biveki Group", org.Name)
	require.Len(t, org.Employees, 1)
	assert.Equal(t, id, org.Employees[0].ID)
}

func TestEmployeeStatsQuery(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)
	createTestEmployee(t, schema)

	var data struct {
		EmployeeStats struct {
			Total    int
			ByStatus []struct {
				Status string
				Count  int
			}
			HireByMonth []struct {
				Month string
				Count int
			}
			TopPositions []struct {
				Position string
				Count    int
			}
		}
	}
	exec(t, schema, `{
		employeeStats {
			total
			byStatus { status count }
			hireByMonth { month count }
			topPositions { position count }
		}
	}`, nil, &data)

	s := data.EmployeeStats
	assert.Equal(t, 1, s.Total)
	require.Len(t, s.ByStatus, 4)
	assert.Equal(t, "ACTIVE", s.ByStatus[0].Status)
	assert.Equal(t, 1, s.ByStatus[0].Count)
	require.Len(t, s.HireByMonth, 1)
	assert.Equal(t, "2024-01", s.HireByMonth[0].Month)
	require.Len(t, s.TopPositions, 1)
	assert.Equal(t, "Инженер", s.TopPositions[0].Position)
}

func TestValidationErrorExtensions(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), createEmployeeMutation, "", map[string]interface{}{
		"input": map[string]interface{}{
			"firstName":      "",
			"lastName":       "",
			"position":       "Инженер",
			"phone":          "+70000000000",
			"hireDate":       "2024-01-15",
			"organizationId": "org1",
		},
	})
	require.Len(t, resp.Errors, 1)

	ext := resp.Errors[0].Extensions
	require.NotNil(t, ext)
	assert.Equal(t, "VALIDATION_ERROR", ext["code"])
	assert.ElementsMatch(t, []string{"firstName", "lastName"}, ext["fields"])
}

func TestUnknownOrganizationIsConstraintViolation(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), createEmployeeMutation, "", map[string]interface{}{
		"input": map[string]interface{}{
			"firstName":      "Иван",
			"lastName":       "Петров",
			"position":       "Инженер",
			"phone":          "+70000000000",
			"hireDate":       "2024-01-15",
			"organizationId": "org-missing",
		},
	})
	require.Len(t, resp.Errors, 1)
	require.NotNil(t, resp.Errors[0].Extensions)
	assert.Equal(t, "CONSTRAINT_VIOLATION", resp.Errors[0].Extensions["code"])
}

func TestScheduleForUnknownEmployeeIsNotFound(t *testing.T) {
	t.Parallel()
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), `
		mutation {
			updateEmployeeSchedule(input: {
				employeeId: "no-such-id", date: "2024-02-10", status: WORK
			})
		}`, "", nil)
	require.Len(t, resp.Errors, 1)
	require.NotNil(t, resp.Errors[0].Extensions)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
}
