// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// TagPastDate validates that a civil.Date is valid and strictly before today (UTC).
const TagPastDate = "pastdate"

// FieldError describes one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError is returned by Validate and carries every failed rule.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a validator that reports JSON field names and knows the pastdate tag.
func New() *CustomValidator {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *CustomValidator {
	cv := &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	cv.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// civil.Date is validated through its YYYY-MM-DD form; the zero date maps
	// to "" so required rejects it.
	cv.validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(civil.Date)
		if !ok || !d.IsValid() {
			return ""
		}

		return d.String()
	}, civil.Date{})

	_ = cv.validate.RegisterValidation(TagPastDate, cv.isPastDate)

	return cv
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return translate(cv.validate.Struct(i))
}

// Var validates a single value against tag, reporting failures under field.
func (cv *CustomValidator) Var(field string, value any, tag string) error {
	err := translate(cv.validate.Var(value, tag))

	var verr *ValidationError
	if errors.As(err, &verr) {
		for i := range verr.Fields {
			verr.Fields[i].Field = field
		}
	}

	return err
}

func (cv *CustomValidator) isPastDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := civil.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}

	return d.Before(civil.DateOf(cv.now().UTC()))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}
