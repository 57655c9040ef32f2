package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.orgRepo.GetByID(ctx, req.OrganizationID); err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return employee.Employee{}, employee.ErrOrganizationNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to check organization: %w", err)
	}

	// Validate guarantees the date shapes are parseable.
	hireDate, _ := validator.ParseFlexibleDate(req.HireDate)

	status := employee.StatusActive
	if req.Status != nil && *req.Status != "" {
		status = employee.Status(*req.Status)
	}

	var salary *decimal.Decimal
	if req.Salary != nil {
		d := decimal.NewFromFloat(*req.Salary)
		salary = &d
	}

	newEmployee := employee.Employee{
		OrganizationID:   req.OrganizationID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MiddleName:       optString(req.MiddleName),
		BirthDate:        optDate(req.BirthDate),
		AvatarURL:        optString(req.Avatar),
		Position:         req.Position,
		Department:       optString(req.Department),
		HireDate:         hireDate,
		Salary:           salary,
		Status:           status,
		Phone:            req.Phone,
		Email:            optString(req.Email),
		Telegram:         optString(req.Telegram),
		Whatsapp:         optString(req.Whatsapp),
		EmergencyContact: optString(req.EmergencyContact),
		EmergencyPhone:   optString(req.EmergencyPhone),
		PassportPhoto:    optString(req.PassportPhoto),
		PassportSeries:   optString(req.PassportSeries),
		PassportNumber:   optString(req.PassportNumber),
		PassportIssued:   optString(req.PassportIssued),
		PassportDate:     optDate(req.PassportDate),
		Address:          optString(req.Address),
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrOrganizationNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if validator.IsEmpty(id) {
		return employee.Employee{}, validator.ValidationErrors{{Field: "id", Message: "is required"}}
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	upd := employee.Update{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MiddleName:       req.MiddleName,
		BirthDate:        optDate(req.BirthDate),
		AvatarURL:        req.Avatar,
		Position:         req.Position,
		Department:       req.Department,
		HireDate:         optDate(req.HireDate),
		Status:           updStatus(req.Status),
		Phone:            req.Phone,
		Email:            req.Email,
		Telegram:         req.Telegram,
		Whatsapp:         req.Whatsapp,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		PassportPhoto:    req.PassportPhoto,
		PassportSeries:   req.PassportSeries,
		PassportNumber:   req.PassportNumber,
		PassportIssued:   req.PassportIssued,
		PassportDate:     optDate(req.PassportDate),
		Address:          req.Address,
		OrganizationID:   req.OrganizationID,
	}
	if req.Salary != nil {
		d := decimal.NewFromFloat(*req.Salary)
		upd.Salary = &d
	}

	updated, err := s.employeeRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrOrganizationNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

// DeleteEmployee implements employee.EmployeeService. A missing id
// yields false, not an error.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	deleted, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return deleted, nil
}

func optString(s *string) *string {
	if s == nil || validator.IsEmpty(*s) {
		return nil
	}
	return s
}

func optDate(s *string) *time.Time {
	if s == nil || validator.IsEmpty(*s) {
		return nil
	}
	t, ok := validator.ParseFlexibleDate(*s)
	if !ok {
		return nil
	}
	return &t
}

func updStatus(s *string) *employee.Status {
	if s == nil {
		return nil
	}
	st := employee.Status(*s)
	return &st
}
