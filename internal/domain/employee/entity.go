package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	OrganizationID   string
	FirstName        string
	LastName         string
	MiddleName       *string
	BirthDate        *time.Time
	AvatarURL        *string
	Position         string
	Department       *string
	HireDate         time.Time
	Salary           *decimal.Decimal
	Status           Status
	Phone            string
	Email            *string
	Telegram         *string
	Whatsapp         *string
	EmergencyContact *string
	EmergencyPhone   *string
	PassportPhoto    *string
	PassportSeries   *string
	PassportNumber   *string
	PassportIssued   *string
	PassportDate     *time.Time
	Address          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusVacation Status = "VACATION"
	StatusSick     Status = "SICK"
	StatusFired    Status = "FIRED"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusVacation),
	string(StatusSick),
	string(StatusFired),
}
