package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var retag = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on a struct field,
// and replaces the identifiable ones with messages adapted to CLI.
type invalidVarError struct {
	fieldName    string
	fieldValue   string // This is the string representation of the value
	validatorErr error
}

// Error implements the Error interface.
func (err *invalidVarError) Error() string {
	var fieldErr validator.FieldError
	if errors.As(err.validatorErr, &fieldErr) {
		switch fieldErr.Tag() {
		case "required":
			return fmt.Sprintf("%s: a value is required", err.fieldName)
		case "oneof":
			choices := strings.Join(strings.Fields(fieldErr.Param()), ", ")
			return fmt.Sprintf("%s: `%s` is not a valid choice (valid choices: %s)", err.fieldName, err.fieldValue, choices)
		case "varname":
			return fmt.Sprintf("%s: `%s` is not a valid variable name", err.fieldName, err.fieldValue)
		}
	}

	// Match the part containing the tag name
	matched := retag.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			return fmt.Sprintf("%s: `%s` is not a valid %s", err.fieldName, err.fieldValue, strings.Trim(parts[1], "'"))
		}
	}

	return err.validatorErr.Error()
}

// Unwrap returns the underlying validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
