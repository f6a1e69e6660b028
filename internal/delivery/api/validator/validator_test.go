package validator

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string     `json:"name" validate:"required,max=5"`
	BirthDate civil.Date `json:"birthDate" validate:"required,pastdate"`
	Phone     *string    `json:"phoneNumber" validate:"omitnil,e164"`
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)

	return verr.Fields
}

func TestValidate_Valid(t *testing.T) {
	v := newWithClock(fixedClock())
	phone := "+14155550100"

	err := v.Validate(&sample{
		Name:      "Alice",
		BirthDate: civil.Date{Year: 1987, Month: time.May, Day: 12},
		Phone:     &phone,
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := newWithClock(fixedClock())
	phone := "not-a-phone"

	err := v.Validate(&sample{
		Name:      "Alexander",
		BirthDate: civil.Date{Year: 1987, Month: time.May, Day: 12},
		Phone:     &phone,
	})

	fields := fieldErrors(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldError{Field: "name", Rule: "max", Param: "5"}, fields[0])
	assert.Equal(t, FieldError{Field: "phoneNumber", Rule: "e164"}, fields[1])
	assert.Contains(t, err.Error(), "name: max")
}

func TestValidate_PastDate(t *testing.T) {
	tests := []struct {
		name     string
		date     civil.Date
		wantRule string
	}{
		{name: "yesterday", date: civil.Date{Year: 2024, Month: time.June, Day: 14}},
		{name: "today", date: civil.Date{Year: 2024, Month: time.June, Day: 15}, wantRule: TagPastDate},
		{name: "future", date: civil.Date{Year: 2030, Month: time.January, Day: 1}, wantRule: TagPastDate},
		{name: "zero", date: civil.Date{}, wantRule: "required"},
		{name: "invalid", date: civil.Date{Year: 2023, Month: time.February, Day: 30}, wantRule: "required"},
	}

	v := newWithClock(fixedClock())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&sample{Name: "Bob", BirthDate: tt.date})
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			fields := fieldErrors(t, err)
			require.Len(t, fields, 1)
			assert.Equal(t, "birthDate", fields[0].Field)
			assert.Equal(t, tt.wantRule, fields[0].Rule)
		})
	}
}

func TestVar(t *testing.T) {
	v := newWithClock(fixedClock())

	assert.NoError(t, v.Var("email", "alice@example.com", "required,email"))

	fields := fieldErrors(t, v.Var("email", "alice", "required,email"))
	require.Len(t, fields, 1)
	assert.Equal(t, FieldError{Field: "email", Rule: "email"}, fields[0])

	fields = fieldErrors(t, v.Var("birthDate", civil.Date{Year: 2025, Month: time.January, Day: 1}, "required,"+TagPastDate))
	require.Len(t, fields, 1)
	assert.Equal(t, "birthDate", fields[0].Field)
	assert.Equal(t, TagPastDate, fields[0].Rule)
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "name", fieldPath("UserRequest.name"))
	assert.Equal(t, "address.city", fieldPath("UserRequest.address.city"))
	assert.Equal(t, "", fieldPath(""))
}
