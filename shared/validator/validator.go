package validator

import (
	"desk/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report JSON names so messages match what the client sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
}

// Normalizer is implemented by requests that trim or default their fields before validation.
type Normalizer interface {
	Normalize()
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Every violated rule is reported in a single
// failure.Validation error.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	err := validate.Struct(data)
	if err != nil {
		fields, msgs := describe(err)

		return failure.Validation(fields, msgs...) //nolint:wrapcheck
	}

	return nil
}

