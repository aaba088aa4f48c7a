package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/hsh/internal/vars"
)

const (
	validTag = "validate"
	nameTag  = "yaml"
)

// ErrInvalidChoice indicates that a value is not among the valid choices.
var ErrInvalidChoice = errors.New("invalid choice")

// New returns a validator with all the shell's custom validations
// registered. Fields are reported by their YAML key names.
func New() *validator.Validate {
	validate := validator.New()
	validate.SetTagName(validTag)

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get(nameTag), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Variable names must be substitutable with `$name`.
	err := validate.RegisterValidation("varname", func(fl validator.FieldLevel) bool {
		return vars.IsName(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register varname validation: %s", err))
	}

	return validate
}

// Struct validates a struct, and rewrites any validation
// errors into messages more adapted to a command-line.
func Struct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		errs = append(errs, &invalidVarError{
			fieldName:    fieldName(fieldErr.Namespace()),
			fieldValue:   fmt.Sprint(fieldErr.Value()),
			validatorErr: fieldErr,
		})
	}

	return errors.Join(errs...)
}

// Choice checks the given value is among valid choices.
func Choice(val string, choices []string) error {
	for _, choice := range choices {
		if val == choice {
			return nil
		}
	}

	return fmt.Errorf("%w: `%s` (valid choices: %s)", ErrInvalidChoice, val, strings.Join(choices, ", "))
}

// fieldName strips the root struct name from a field namespace.
func fieldName(namespace string) string {
	if _, name, found := strings.Cut(namespace, "."); found {
		return name
	}

	return namespace
}
