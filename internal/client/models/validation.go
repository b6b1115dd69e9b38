package models

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation error")

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
