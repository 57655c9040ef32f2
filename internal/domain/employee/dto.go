package employee

import (
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	MiddleName       *string  `json:"middleName,omitempty"`
	BirthDate        *string  `json:"birthDate,omitempty"`
	Avatar           *string  `json:"avatar,omitempty"`
	PassportPhoto    *string  `json:"passportPhoto,omitempty"`
	PassportSeries   *string  `json:"passportSeries,omitempty"`
	PassportNumber   *string  `json:"passportNumber,omitempty"`
	PassportIssued   *string  `json:"passportIssued,omitempty"`
	PassportDate     *string  `json:"passportDate,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Position         string   `json:"position"`
	Department       *string  `json:"department,omitempty"`
	HireDate         string   `json:"hireDate"`
	Salary           *float64 `json:"salary,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Phone            string   `json:"phone"`
	Email            *string  `json:"email,omitempty"`
	Telegram         *string  `json:"telegram,omitempty"`
	Whatsapp         *string  `json:"whatsapp,omitempty"`
	EmergencyContact *string  `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string  `json:"emergencyPhone,omitempty"`
	OrganizationID   string   `json:"organizationId"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is required"})
	}
	if validator.IsEmpty(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{Field: "organizationId", Message: "is required"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "must be a valid date"})
	}
	if r.BirthDate != nil && !validator.IsEmpty(*r.BirthDate) {
		if _, ok := validator.ParseFlexibleDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "must be a valid date"})
		}
	}
	if r.PassportDate != nil && !validator.IsEmpty(*r.PassportDate) {
		if _, ok := validator.ParseFlexibleDate(*r.PassportDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "passportDate", Message: "must be a valid date"})
		}
	}
	if r.Status != nil && !validator.IsEmpty(*r.Status) && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of ACTIVE, VACATION, SICK, FIRED"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update. A nil field means
// "leave unchanged"; a set field is written as-is. Required columns
// reject being cleared to an empty value.
type UpdateEmployeeRequest struct {
	FirstName        *string  `json:"firstName,omitempty"`
	LastName         *string  `json:"lastName,omitempty"`
	MiddleName       *string  `json:"middleName,omitempty"`
	BirthDate        *string  `json:"birthDate,omitempty"`
	Avatar           *string  `json:"avatar,omitempty"`
	PassportPhoto    *string  `json:"passportPhoto,omitempty"`
	PassportSeries   *string  `json:"passportSeries,omitempty"`
	PassportNumber   *string  `json:"passportNumber,omitempty"`
	PassportIssued   *string  `json:"passportIssued,omitempty"`
	PassportDate     *string  `json:"passportDate,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Position         *string  `json:"position,omitempty"`
	Department       *string  `json:"department,omitempty"`
	HireDate         *string  `json:"hireDate,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Telegram         *string  `json:"telegram,omitempty"`
	Whatsapp         *string  `json:"whatsapp,omitempty"`
	EmergencyContact *string  `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string  `json:"emergencyPhone,omitempty"`
	OrganizationID   *string  `json:"organizationId,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]*string{
		"firstName":      r.FirstName,
		"lastName":       r.LastName,
		"position":       r.Position,
		"phone":          r.Phone,
		"organizationId": r.OrganizationID,
	}
	for field, value := range required {
		if value != nil && validator.IsEmpty(*value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "cannot be empty"})
		}
	}
	if r.HireDate != nil {
		if _, ok := validator.ParseFlexibleDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "must be a valid date"})
		}
	}
	if r.BirthDate != nil && !validator.IsEmpty(*r.BirthDate) {
		if _, ok := validator.ParseFlexibleDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "must be a valid date"})
		}
	}
	if r.PassportDate != nil && !validator.IsEmpty(*r.PassportDate) {
		if _, ok := validator.ParseFlexibleDate(*r.PassportDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "passportDate", Message: "must be a valid date"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of ACTIVE, VACATION, SICK, FIRED"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Update is the presence-aware field set handed to repositories.
// Services build it from a validated UpdateEmployeeRequest.
type Update struct {
	FirstName        *string
	LastName         *string
	MiddleName       *string
	BirthDate        *time.Time
	AvatarURL        *string
	PassportPhoto    *string
	PassportSeries   *string
	PassportNumber   *string
	PassportIssued   *string
	PassportDate     *time.Time
	Address          *string
	Position         *string
	Department       *string
	HireDate         *time.Time
	Salary           *decimal.Decimal
	Status           *Status
	Phone            *string
	Email            *string
	Telegram         *string
	Whatsapp         *string
	EmergencyContact *string
	EmergencyPhone   *string
	OrganizationID   *string
}

// ListFilter narrows List; a nil Status returns every employee.
type ListFilter struct {
	Status *Status
}
