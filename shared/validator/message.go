package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages covers the tags booking requests use. omitnil never fails on its
// own; a present value is checked by the tag that follows it.
var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} cannot be empty",
	"date_dmy": "{field} must be a valid date in DD/MM/YYYY format, got {value}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
}

// message describes the first failed rule, falling back to the validator's
// own text for tags without a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
			"{value}", quoted(valErr.Value()),
		).Replace(template)
	}

	return valErrors.Error()
}

func quoted(value any) string {
	if s, ok := value.(string); ok {
		return `"` + s + `"`
	}

	if s, ok := value.(*string); ok && s != nil {
		return `"` + *s + `"`
	}

	return "value"
}
