package drone

import "errors"

// Caller-visible fleet errors. Handlers wrap them with the offending identifier,
// so match them with errors.Is.
var (
	ErrDroneNotFound      = errors.New("drone not found")
	ErrDroneAlreadyExists = errors.New("drone already exists")
	ErrIllegalDroneState  = errors.New("illegal drone state")
)
