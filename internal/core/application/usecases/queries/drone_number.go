package queries

import (
	"fmt"
	"strings"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"
)

// droneNotFound wraps drone.ErrDroneNotFound with the requested number.
func droneNotFound(number string) error {
	return fmt.Errorf("%w: %s", drone.ErrDroneNotFound, number)
}

// validDroneNumber trims number and requires it to be non-blank.
func validDroneNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", errs.NewValueIsRequiredError("drone number")
	}
	return number, nil
}
