package graphql

import (
	"context"
	"errors"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/domain/stats"
)

// Resolver is the schema root. Queries and mutations delegate to the
// services; nested fields (Employee.scheduleRecords,
// Organization.employees) are looked up on demand from the
// repositories rather than denormalized onto the parent.
type Resolver struct {
	employeeService employee.EmployeeService
	scheduleService schedule.ScheduleService
	statsService    stats.StatsService
	employeeRepo    employee.EmployeeRepository
	scheduleRepo    schedule.ScheduleRepository
	orgRepo         organization.OrganizationRepository
}

func NewResolver(
	employeeService employee.EmployeeService,
	scheduleService schedule.ScheduleService,
	statsService stats.StatsService,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	orgRepo organization.OrganizationRepository,
) *Resolver {
	return &Resolver{
		employeeService: employeeService,
		scheduleService: scheduleService,
		statsService:    statsService,
		employeeRepo:    employeeRepo,
		scheduleRepo:    scheduleRepo,
		orgRepo:         orgRepo,
	}
}

// NewSchema parses the SDL against the resolver. Panics on any
// schema/resolver mismatch, which is wanted at startup.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.MaxDepth(16))
}

// --- queries ---

func (r *Resolver) Employees(ctx context.Context, args struct{ Status *string }) ([]*EmployeeResolver, error) {
	filter := employee.ListFilter{}
	if args.Status != nil {
		status := employee.Status(*args.Status)
		filter.Status = &status
	}

	employees, err := r.employeeService.ListEmployees(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return r.wrapEmployees(employees), nil
}

func (r *Resolver) Employee(ctx context.Context, args struct{ ID graphql.ID }) (*EmployeeResolver, error) {
	emp, err := r.employeeService.GetEmployee(ctx, string(args.ID))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	return &EmployeeResolver{root: r, emp: emp}, nil
}

func (r *Resolver) EmployeeSchedule(ctx context.Context, args struct {
	EmployeeID graphql.ID
	Year       int32
	Month      int32
}) ([]*ScheduleResolver, error) {
	records, err := r.scheduleService.GetMonth(ctx, schedule.MonthQuery{
		EmployeeID: string(args.EmployeeID),
		Year:       int(args.Year),
		Month:      int(args.Month),
	})
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*ScheduleResolver, 0, len(records))
	for _, rec := range records {
		resolvers = append(resolvers, &ScheduleResolver{rec: rec})
	}
	return resolvers, nil
}

func (r *Resolver) EmployeeStats(ctx context.Context) (*EmployeeStatsResolver, error) {
	result, err := r.statsService.GetEmployeeStats(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &EmployeeStatsResolver{stats: result}, nil
}

func (r *Resolver) Organizations(ctx context.Context) ([]*OrganizationResolver, error) {
	orgs, err := r.orgRepo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*OrganizationResolver, 0, len(orgs))
	for _, org := range orgs {
		resolvers = append(resolvers, &OrganizationResolver{root: r, org: org})
	}
	return resolvers, nil
}

// --- mutations ---

func (r *Resolver) CreateEmployee(ctx context.Context, args struct{ Input createEmployeeInput }) (*CreateEmployeeResponseResolver, error) {
	created, err := r.employeeService.CreateEmployee(ctx, args.Input.toRequest())
	if err != nil {
		return nil, mapError(err)
	}
	return &CreateEmployeeResponseResolver{employee: &EmployeeResolver{root: r, emp: created}}, nil
}

func (r *Resolver) UpdateEmployee(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateEmployeeInput
}) (*UpdateEmployeeResponseResolver, error) {
	updated, err := r.employeeService.UpdateEmployee(ctx, string(args.ID), args.Input.toRequest())
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdateEmployeeResponseResolver{employee: &EmployeeResolver{root: r, emp: updated}}, nil
}

func (r *Resolver) DeleteEmployee(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	deleted, err := r.employeeService.DeleteEmployee(ctx, string(args.ID))
	if err != nil {
		return false, mapError(err)
	}
	return deleted, nil
}

func (r *Resolver) UpdateEmployeeSchedule(ctx context.Context, args struct{ Input updateScheduleInput }) (bool, error) {
	if _, err := r.scheduleService.UpsertSchedule(ctx, args.Input.toRequest()); err != nil {
		return false, mapError(err)
	}
	return true, nil
}

func (r *Resolver) wrapEmployees(employees []employee.Employee) []*EmployeeResolver {
	resolvers := make([]*EmployeeResolver, 0, len(employees))
	for _, emp := range employees {
		resolvers = append(resolvers, &EmployeeResolver{root: r, emp: emp})
	}
	return resolvers
}

// --- inputs ---

type createEmployeeInput struct {
	FirstName        string
	LastName         string
	MiddleName       *string
	BirthDate        *DateTime
	Avatar           *string
	PassportPhoto    *string
	PassportSeries   *string
	PassportNumber   *string
	PassportIssued   *string
	PassportDate     *DateTime
	Address          *string
	Position         string
	Department       *string
	HireDate         DateTime
	Salary           *float64
	Status           *string
	Phone            string
	Email            *string
	Telegram         *string
	Whatsapp         *string
	EmergencyContact *string
	EmergencyPhone   *string
	OrganizationID   string
}

func (in createEmployeeInput) toRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		MiddleName:       in.MiddleName,
		BirthDate:        dateString(in.BirthDate),
		Avatar:           in.Avatar,
		PassportPhoto:    in.PassportPhoto,
		PassportSeries:   in.PassportSeries,
		PassportNumber:   in.PassportNumber,
		PassportIssued:   in.PassportIssued,
		PassportDate:     dateString(in.PassportDate),
		Address:          in.Address,
		Position:         in.Position,
		Department:       in.Department,
		HireDate:         in.HireDate.UTC().Format(time.RFC3339),
		Salary:           in.Salary,
		Status:           in.Status,
		Phone:            in.Phone,
		Email:            in.Email,
		Telegram:         in.Telegram,
		Whatsapp:         in.Whatsapp,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		OrganizationID:   in.OrganizationID,
	}
}

type updateEmployeeInput struct {
	FirstName        *string
	LastName         *string
	MiddleName       *string
	BirthDate        *DateTime
	Avatar           *string
	PassportPhoto    *string
	PassportSeries   *string
	PassportNumber   *string
	PassportIssued   *string
	PassportDate     *DateTime
	Address          *string
	Position         *string
	Department       *string
	HireDate         *DateTime
	Salary           *float64
	Status           *string
	Phone            *string
	Email            *string
	Telegram         *string
	Whatsapp         *string
	EmergencyContact *string
	EmergencyPhone   *string
	OrganizationID   *string
}

func (in updateEmployeeInput) toRequest() employee.UpdateEmployeeRequest {
	return employee.UpdateEmployeeRequest{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		MiddleName:       in.MiddleName,
		BirthDate:        dateString(in.BirthDate),
		Avatar:           in.Avatar,
		PassportPhoto:    in.PassportPhoto,
		PassportSeries:   in.PassportSeries,
		PassportNumber:   in.PassportNumber,
		PassportIssued:   in.PassportIssued,
		PassportDate:     dateString(in.PassportDate),
		Address:          in.Address,
		Position:         in.Position,
		Department:       in.Department,
		HireDate:         dateString(in.HireDate),
		Salary:           in.Salary,
		Status:           in.Status,
		Phone:            in.Phone,
		Email:            in.Email,
		Telegram:         in.Telegram,
		Whatsapp:         in.Whatsapp,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		OrganizationID:   in.OrganizationID,
	}
}

type updateScheduleInput struct {
	EmployeeID  string
	Date        DateTime
	Status      string
	HoursWorked *float64
	Notes       *string
}

func (in updateScheduleInput) toRequest() schedule.UpsertScheduleRequest {
	return schedule.UpsertScheduleRequest{
		EmployeeID:  in.EmployeeID,
		Date:        in.Date.UTC().Format(time.RFC3339),
		Status:      in.Status,
		HoursWorked: in.HoursWorked,
		Notes:       in.Notes,
	}
}

func dateString(d *DateTime) *string {
	if d == nil {
		return nil
	}
	s := d.UTC().Format(time.RFC3339)
	return &s
}
