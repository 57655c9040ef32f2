package memory

import (
	"context"
	"strings"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasOrganization(newEmployee.OrganizationID) {
		return employee.Employee{}, employee.ErrOrganizationNotFound
	}

	now := time.Now().UTC()
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now

	s.employees = append(s.employees, newEmployee)
	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			return s.employees[i], nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []employee.Employee{}
	for i := range s.employees {
		if filter.Status != nil && s.employees[i].Status != *filter.Status {
			continue
		}
		result = append(result, s.employees[i])
	}
	return result, nil
}

// ListByOrganization implements employee.EmployeeRepository.
func (r *employeeRepository) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []employee.Employee{}
	for i := range s.employees {
		if s.employees[i].OrganizationID == organizationID {
			result = append(result, s.employees[i])
		}
	}
	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, id string, upd employee.Update) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.employees {
		if s.employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp := s.employees[idx]

	if upd.OrganizationID != nil {
		if !s.hasOrganization(*upd.OrganizationID) {
			return employee.Employee{}, employee.ErrOrganizationNotFound
		}
		emp.OrganizationID = *upd.OrganizationID
	}
	if upd.FirstName != nil {
		emp.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		emp.LastName = *upd.LastName
	}
	if upd.MiddleName != nil {
		emp.MiddleName = clearEmpty(*upd.MiddleName)
	}
	if upd.BirthDate != nil {
		d := *upd.BirthDate
		emp.BirthDate = &d
	}
	if upd.AvatarURL != nil {
		emp.AvatarURL = clearEmpty(*upd.AvatarURL)
	}
	if upd.Position != nil {
		emp.Position = *upd.Position
	}
	if upd.Department != nil {
		emp.Department = clearEmpty(*upd.Department)
	}
	if upd.HireDate != nil {
		emp.HireDate = *upd.HireDate
	}
	if upd.Salary != nil {
		sal := *upd.Salary
		emp.Salary = &sal
	}
	if upd.Status != nil {
		emp.Status = *upd.Status
	}
	if upd.Phone != nil {
		emp.Phone = *upd.Phone
	}
	if upd.Email != nil {
		emp.Email = clearEmpty(*upd.Email)
	}
	if upd.Telegram != nil {
		emp.Telegram = clearEmpty(*upd.Telegram)
	}
	if upd.Whatsapp != nil {
		emp.Whatsapp = clearEmpty(*upd.Whatsapp)
	}
	if upd.EmergencyContact != nil {
		emp.EmergencyContact = clearEmpty(*upd.EmergencyContact)
	}
	if upd.EmergencyPhone != nil {
		emp.EmergencyPhone = clearEmpty(*upd.EmergencyPhone)
	}
	if upd.PassportPhoto != nil {
		emp.PassportPhoto = clearEmpty(*upd.PassportPhoto)
	}
	if upd.PassportSeries != nil {
		emp.PassportSeries = clearEmpty(*upd.PassportSeries)
	}
	if upd.PassportNumber != nil {
		emp.PassportNumber = clearEmpty(*upd.PassportNumber)
	}
	if upd.PassportIssued != nil {
		emp.PassportIssued = clearEmpty(*upd.PassportIssued)
	}
	if upd.PassportDate != nil {
		d := *upd.PassportDate
		emp.PassportDate = &d
	}
	if upd.Address != nil {
		emp.Address = clearEmpty(*upd.Address)
	}

	emp.UpdatedAt = time.Now().UTC()
	s.employees[idx] = emp
	return emp, nil
}

// Delete implements employee.EmployeeRepository. Schedule records of
// the employee are removed with it, matching the Postgres cascade.
func (r *employeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			delete(s.schedules, id)
			return true, nil
		}
	}
	return false, nil
}

// clearEmpty mirrors the Postgres repository's NULL-on-empty handling
// for optional columns.
func clearEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
