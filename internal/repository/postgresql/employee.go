package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, organization_id, first_name, last_name, middle_name, birth_date, avatar_url,
	position, department, hire_date, salary, status, phone, email, telegram, whatsapp,
	emergency_contact, emergency_phone, passport_photo, passport_series, passport_number,
	passport_issued, passport_date, address, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.OrganizationID, &emp.FirstName, &emp.LastName, &emp.MiddleName,
		&emp.BirthDate, &emp.AvatarURL, &emp.Position, &emp.Department, &emp.HireDate,
		&emp.Salary, &emp.Status, &emp.Phone, &emp.Email, &emp.Telegram, &emp.Whatsapp,
		&emp.EmergencyContact, &emp.EmergencyPhone, &emp.PassportPhoto, &emp.PassportSeries,
		&emp.PassportNumber, &emp.PassportIssued, &emp.PassportDate, &emp.Address,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			organization_id, first_name, last_name, middle_name, birth_date, avatar_url,
			position, department, hire_date, salary, status, phone, email, telegram, whatsapp,
			emergency_contact, emergency_phone, passport_photo, passport_series, passport_number,
			passport_issued, passport_date, address
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22, $23
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.OrganizationID, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.MiddleName, newEmployee.BirthDate, newEmployee.AvatarURL,
		newEmployee.Position, newEmployee.Department, newEmployee.HireDate,
		newEmployee.Salary, newEmployee.Status, newEmployee.Phone, newEmployee.Email,
		newEmployee.Telegram, newEmployee.Whatsapp, newEmployee.EmergencyContact,
		newEmployee.EmergencyPhone, newEmployee.PassportPhoto, newEmployee.PassportSeries,
		newEmployee.PassportNumber, newEmployee.PassportIssued, newEmployee.PassportDate,
		newEmployee.Address,
	))
	if err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			return employee.Employee{}, employee.ErrOrganizationNotFound
		}
		return employee.Employee{}, wrapStoreErr("create employee", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, wrapStoreErr("get employee", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository. Ordering follows
// insertion order via created_at.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at, id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("list employees", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListByOrganization implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 ORDER BY created_at, id`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, wrapStoreErr("list employees by organization", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository. Only set fields make
// it into the statement; updated_at is always refreshed.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, upd employee.Update) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	sets := []string{}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.OrganizationID != nil {
		set("organization_id", *upd.OrganizationID)
	}
	if upd.FirstName != nil {
		set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		set("last_name", *upd.LastName)
	}
	if upd.MiddleName != nil {
		set("middle_name", nullIfEmpty(*upd.MiddleName))
	}
	if upd.BirthDate != nil {
		set("birth_date", *upd.BirthDate)
	}
	if upd.AvatarURL != nil {
		set("avatar_url", nullIfEmpty(*upd.AvatarURL))
	}
	if upd.Position != nil {
		set("position", *upd.Position)
	}
	if upd.Department != nil {
		set("department", nullIfEmpty(*upd.Department))
	}
	if upd.HireDate != nil {
		set("hire_date", *upd.HireDate)
	}
	if upd.Salary != nil {
		set("salary", *upd.Salary)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Phone != nil {
		set("phone", *upd.Phone)
	}
	if upd.Email != nil {
		set("email", nullIfEmpty(*upd.Email))
	}
	if upd.Telegram != nil {
		set("telegram", nullIfEmpty(*upd.Telegram))
	}
	if upd.Whatsapp != nil {
		set("whatsapp", nullIfEmpty(*upd.Whatsapp))
	}
	if upd.EmergencyContact != nil {
		set("emergency_contact", nullIfEmpty(*upd.EmergencyContact))
	}
	if upd.EmergencyPhone != nil {
		set("emergency_phone", nullIfEmpty(*upd.EmergencyPhone))
	}
	if upd.PassportPhoto != nil {
		set("passport_photo", nullIfEmpty(*upd.PassportPhoto))
	}
	if upd.PassportSeries != nil {
		set("passport_series", nullIfEmpty(*upd.PassportSeries))
	}
	if upd.PassportNumber != nil {
		set("passport_number", nullIfEmpty(*upd.PassportNumber))
	}
	if upd.PassportIssued != nil {
		set("passport_issued", nullIfEmpty(*upd.PassportIssued))
	}
	if upd.PassportDate != nil {
		set("passport_date", *upd.PassportDate)
	}
	if upd.Address != nil {
		set("address", nullIfEmpty(*upd.Address))
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE employees SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), employeeColumns,
	)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isPgErr(err, pgForeignKeyViolation) {
			return employee.Employee{}, employee.ErrOrganizationNotFound
		}
		return employee.Employee{}, wrapStoreErr("update employee", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository. A missing id is not
// an error; the result reports whether a row was removed. Schedule
// records go with the employee via the ON DELETE CASCADE constraint.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, wrapStoreErr("delete employee", err)
	}
	return tag.RowsAffected() > 0, nil
}

// nullIfEmpty maps an explicitly-cleared optional field to NULL.
func nullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
