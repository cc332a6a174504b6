// ABOUTME: Input validation for create/set operations.
// ABOUTME: Wraps go-playground/validator failures in a single ValidationError type.
package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidationError reports required fields that were missing or malformed.
type ValidationError struct {
	Op     string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid or missing fields: %s", e.Op, strings.Join(e.Fields, ", "))
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks an input struct against its validate tags.
func Validate(op string, input any) error {
	err := validatorInstance().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Op: op, Fields: []string{err.Error()}}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Op: op, Fields: fields}
}

// Validate checks required workout fields.
func (in *WorkoutInput) Validate() error { return Validate("workout", in) }

// Validate checks required meal fields.
func (in *MealInput) Validate() error { return Validate("meal", in) }

// Validate checks required goal fields.
func (in *GoalInput) Validate() error { return Validate("goal", in) }

// Validate checks required calorie goal fields.
func (in *CalorieGoalInput) Validate() error { return Validate("calorie goal", in) }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
