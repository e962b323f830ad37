package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param} characters",
		"email":    "{field} must be a valid email address",
		"datetime": "{field} must match the format {param}",
	}
)

// describe returns the offending field names and one message per violation.
func describe(err error) (fields []string, msgs []string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil, []string{err.Error()}
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		fields = append(fields, field)

		msg := messages[valErr.Tag()]
		if msg == "" {
			msgs = append(msgs, valErr.Error())

			continue
		}

		msg = strings.ReplaceAll(msg, "{field}", field)
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())
		msgs = append(msgs, msg)
	}

	return fields, msgs
}
