package database

import "errors"

// ErrUnavailable marks failures to reach the datastore at all, as
// opposed to errors the datastore itself reported. Requests carrying
// it are fatal and never retried here.
var ErrUnavailable = errors.New("datastore unavailable")
