// Package validators enforces domain rules on caller-supplied payloads
// before they reach the persistence layer. Violations are reported as
// classified validation errors (see internal/apperr) so the HTTP layer can
// answer with a per-field message mapping.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/krazykeith/apistarter/internal/apperr"
	"github.com/krazykeith/apistarter/models"
)

// PersonValidator validates persons against the `validate` tags declared on
// [models.Person].
type PersonValidator struct {
	validate *validator.Validate
}

// NewPersonValidator constructs a validator whose reported field names match
// the JSON tags of the model, so clients can correlate messages with the
// fields they actually sent.
func NewPersonValidator() *PersonValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &PersonValidator{validate: v}
}

// Validate checks person against its declared rules.
// Returns nil when valid, an apperr validation error listing every offending
// field otherwise.
func (p *PersonValidator) Validate(person models.Person) error {
	err := p.validate.Struct(person)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Not a rule violation: the value itself could not be validated.
		return fmt.Errorf("error validating person: %w", err)
	}

	fields := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields[fe.Field()] = append(fields[fe.Field()], describeViolation(fe))
	}

	return apperr.Validation(fields)
}

// describeViolation renders a rule violation as a client-facing message.
func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid e-mail address"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
