// Package validate checks console input for the add-appointment flow.
package validate

import (
	"strings"

	"github.com/manav03panchal/apptremind/internal/errors"
)

// Name rejects an empty name. Whitespace-only names are accepted.
func Name(name string) error {
	if name == "" {
		return errors.NewInputError(errors.ErrEmptyName, "name", name, "Invalid name.")
	}
	return nil
}

// Time rejects an empty time. The format is not checked.
func Time(t string) error {
	if t == "" {
		return errors.NewInputError(errors.ErrEmptyTime, "time", t, "Invalid time format.")
	}
	return nil
}

// YesNo reports whether answer is a case-insensitive "yes". Any answer other than
// yes or no is an error.
func YesNo(answer string) (bool, error) {
	switch strings.ToLower(answer) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, errors.NewInputError(errors.ErrInvalidAnswer, "type_known", answer, "Invalid input for appointment type.")
	}
}
