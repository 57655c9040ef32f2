package graphql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
)

type EmployeeResolver struct {
	root *Resolver
	emp  employee.Employee
}

func (r *EmployeeResolver) ID() graphql.ID { return graphql.ID(r.emp.ID) }
func (r *EmployeeResolver) FirstName() string { return r.emp.FirstName }
func (r *EmployeeResolver) LastName() string { return r.emp.LastName }
func (r *EmployeeResolver) MiddleName() *string { return r.emp.MiddleName }
func (r *EmployeeResolver) Avatar() *string { return r.emp.AvatarURL }
func (r *EmployeeResolver) Position() string { return r.emp.Position }
func (r *EmployeeResolver) Department() *string { return r.emp.Department }
func (r *EmployeeResolver) Status() string { return string(r.emp.Status) }
func (r *EmployeeResolver) Phone() string { return r.emp.Phone }
func (r *EmployeeResolver) Email() *string { return r.emp.Email }
func (r *EmployeeResolver) Telegram() *string { return r.emp.Telegram }
func (r *EmployeeResolver) Whatsapp() *string { return r.emp.Whatsapp }
func (r *EmployeeResolver) EmergencyContact() *string { return r.emp.EmergencyContact }
func (r *EmployeeResolver) EmergencyPhone() *string { return r.emp.EmergencyPhone }
func (r *EmployeeResolver) OrganizationID() string { return r.emp.OrganizationID }

func (r *EmployeeResolver) BirthDate() *DateTime {
	if r.emp.BirthDate == nil {
		return nil
	}
	return &DateTime{Time: *r.emp.BirthDate}
}

func (r *EmployeeResolver) HireDate() DateTime { return DateTime{Time: r.emp.HireDate} }
func (r *EmployeeResolver) CreatedAt() DateTime { return DateTime{Time: r.emp.CreatedAt} }
func (r *EmployeeResolver) UpdatedAt() DateTime { return DateTime{Time: r.emp.UpdatedAt} }

func (r *EmployeeResolver) Salary() *float64 {
	if r.emp.Salary == nil {
		return nil
	}
	v := r.emp.Salary.InexactFloat64()
	return &v
}

// ScheduleRecords loads the employee's full schedule history on demand.
func (r *EmployeeResolver) ScheduleRecords(ctx context.Context) ([]*ScheduleResolver, error) {
	records, err := r.root.scheduleRepo.ListByEmployee(ctx, r.emp.ID)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*ScheduleResolver, 0, len(records))
	for _, rec := range records {
		resolvers = append(resolvers, &ScheduleResolver{rec: rec})
	}
	return resolvers, nil
}

type ScheduleResolver struct {
	rec schedule.Schedule
}

func (r *ScheduleResolver) ID() graphql.ID { return graphql.ID(r.rec.ID) }
func (r *ScheduleResolver) Date() DateTime { return DateTime{Time: r.rec.Date} }
func (r *ScheduleResolver) Status() string { return string(r.rec.Status) }
func (r *ScheduleResolver) Notes() *string { return r.rec.Notes }
func (r *ScheduleResolver) EmployeeID() string { return r.rec.EmployeeID }
func (r *ScheduleResolver) CreatedAt() DateTime { return DateTime{Time: r.rec.CreatedAt} }
func (r *ScheduleResolver) UpdatedAt() DateTime { return DateTime{Time: r.rec.UpdatedAt} }

func (r *ScheduleResolver) HoursWorked() *float64 {
	if r.rec.HoursWorked == nil {
		return nil
	}
	v := r.rec.HoursWorked.InexactFloat64()
	return &v
}

type OrganizationResolver struct {
	root *Resolver
	org  organization.Organization
}

func (r *OrganizationResolver) ID() graphql.ID { return graphql.ID(r.org.ID) }
func (r *OrganizationResolver) Name() string { return r.org.Name }

// Employees resolves the organization's members on demand.
func (r *OrganizationResolver) Employees(ctx context.Context) ([]*EmployeeResolver, error) {
	employees, err := r.root.employeeRepo.ListByOrganization(ctx, r.org.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return r.root.wrapEmployees(employees), nil
}

type EmployeeStatsResolver struct {
	stats *stats.EmployeeStats
}

func (r *EmployeeStatsResolver) Total() int32 { return int32(r.stats.Total) }
func (r *EmployeeStatsResolver) AvgAge() *float64 { return r.stats.AvgAge }
func (r *EmployeeStatsResolver) AvgSalary() *float64 { return r.stats.AvgSalary }

func (r *EmployeeStatsResolver) ByStatus() []*StatusCountResolver {
	resolvers := make([]*StatusCountResolver, 0, len(r.stats.ByStatus))
	for _, sc := range r.stats.ByStatus {
		resolvers = append(resolvers, &StatusCountResolver{sc: sc})
	}
	return resolvers
}

func (r *EmployeeStatsResolver) HireByMonth() []*HireStatResolver {
	resolvers := make([]*HireStatResolver, 0, len(r.stats.HireByMonth))
	for _, h := range r.stats.HireByMonth {
		resolvers = append(resolvers, &HireStatResolver{h: h})
	}
	return resolvers
}

func (r *EmployeeStatsResolver) TopPositions() []*PositionStatResolver {
	resolvers := make([]*PositionStatResolver, 0, len(r.stats.TopPositions))
	for _, p := range r.stats.TopPositions {
		resolvers = append(resolvers, &PositionStatResolver{p: p})
	}
	return resolvers
}

func (r *EmployeeStatsResolver) Attendance() []*AttendanceStatResolver {
	resolvers := make([]*AttendanceStatResolver, 0, len(r.stats.Attendance))
	for _, a := range r.stats.Attendance {
		resolvers = append(resolvers, &AttendanceStatResolver{a: a})
	}
	return resolvers
}

type StatusCountResolver struct {
	sc stats.StatusCount
}

func (r *StatusCountResolver) Status() string { return string(r.sc.Status) }
func (r *StatusCountResolver) Count() int32 { return int32(r.sc.Count) }

type HireStatResolver struct {
	h stats.HireStat
}

func (r *HireStatResolver) Month() string { return r.h.Month }
func (r *HireStatResolver) Count() int32 { return int32(r.h.Count) }

type PositionStatResolver struct {
	p stats.PositionStat
}

func (r *PositionStatResolver) Position() string { return r.p.Position }
func (r *PositionStatResolver) Count() int32 { return int32(r.p.Count) }

type AttendanceStatResolver struct {
	a stats.AttendanceStat
}

func (r *AttendanceStatResolver) Date() string { return r.a.Date }
func (r *AttendanceStatResolver) Present() int32 { return int32(r.a.Present) }
func (r *AttendanceStatResolver) Absent() int32 { return int32(r.a.Absent) }

type CreateEmployeeResponseResolver struct {
	employee *EmployeeResolver
}

func (r *CreateEmployeeResponseResolver) Employee() *EmployeeResolver { return r.employee }

type UpdateEmployeeResponseResolver struct {
	employee *EmployeeResolver
}

func (r *UpdateEmployeeResponseResolver) Employee() *EmployeeResolver { return r.employee }
