package graphql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
)

// DateTime is the schema's DateTime scalar. On input it accepts both
// RFC3339 timestamps and plain "YYYY-MM-DD" dates, which is what the
// calendar widget sends; on output it always renders RFC3339 in UTC.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (d *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, ok := validator.ParseFlexibleDate(v)
		if !ok {
			return fmt.Errorf("invalid DateTime %q", v)
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("wrong type for DateTime: %T", input)
	}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}
