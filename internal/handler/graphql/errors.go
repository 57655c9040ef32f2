package graphql

import (
	"errors"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
)

// apiError is the GraphQL-facing error shape. The code (and for
// validation failures the violated field names) lands in the response
// error extensions.
type apiError struct {
	code    string
	message string
	fields  []string
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.fields) > 0 {
		ext["fields"] = e.fields
	}
	return ext
}

// mapError translates domain errors into API errors. Unrecognized
// errors are masked behind a generic internal error.
func mapError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &apiError{
			code:    "VALIDATION_ERROR",
			message: validationErrs.Error(),
			fields:  validationErrs.Fields(),
		}
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return &apiError{code: "NOT_FOUND", message: "employee not found"}
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return &apiError{code: "NOT_FOUND", message: "schedule record not found"}
	case errors.Is(err, employee.ErrOrganizationNotFound),
		errors.Is(err, organization.ErrOrganizationNotFound):
		return &apiError{code: "CONSTRAINT_VIOLATION", message: "organization not found"}
	case errors.Is(err, schedule.ErrDuplicateSchedule):
		return &apiError{code: "CONSTRAINT_VIOLATION", message: "duplicate schedule record"}
	case errors.Is(err, database.ErrUnavailable):
		return &apiError{code: "STORAGE_UNAVAILABLE", message: "datastore unavailable"}
	default:
		return &apiError{code: "INTERNAL_ERROR", message: "an unexpected error occurred"}
	}
}
