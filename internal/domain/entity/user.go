// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"cloud.google.com/go/civil"
)

// User is the single resource managed by the service.
type User struct {
	ID          int64      `json:"id"`                    // Assigned by the store on create; zero means unset.
	Name        string     `json:"name"`                  // Display name.
	Email       string     `json:"email"`                 // Primary contact e-mail.
	BirthDate   civil.Date `json:"birthDate"`             // Calendar date, encoded as YYYY-MM-DD.
	Address     *string    `json:"address,omitempty"`     // Optional postal address.
	PhoneNumber *string    `json:"phoneNumber,omitempty"` // Optional phone number.
}

// UserPatch is a sparse update. Only present fields are written to the target.
type UserPatch struct {
	Name        Optional[string]     `json:"name,omitzero"`
	Email       Optional[string]     `json:"email,omitzero"`
	BirthDate   Optional[civil.Date] `json:"birthDate,omitzero"`
	Address     Optional[*string]    `json:"address,omitzero"`
	PhoneNumber Optional[*string]    `json:"phoneNumber,omitzero"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p *UserPatch) IsEmpty() bool {
	return !p.Name.IsSet() &&
		!p.Email.IsSet() &&
		!p.BirthDate.IsSet() &&
		!p.Address.IsSet() &&
		!p.PhoneNumber.IsSet()
}

// BirthDateRange filters users by birth date. Both bounds are exclusive and
// either may be absent.
type BirthDateRange struct {
	From Optional[civil.Date]
	To   Optional[civil.Date]
}

// IsUnbounded reports whether neither bound is set.
func (r BirthDateRange) IsUnbounded() bool {
	return !r.From.IsSet() && !r.To.IsSet()
}

// Contains reports whether d lies strictly between the present bounds.
func (r BirthDateRange) Contains(d civil.Date) bool {
	if from, ok := r.From.Get(); ok && !d.After(from) {
		return false
	}
	if to, ok := r.To.Get(); ok && !d.Before(to) {
		return false
	}

	return true
}

// Clone returns a deep copy of u, so the copy shares no pointers with u.
func (u User) Clone() User {
	out := u
	if u.Address != nil {
		v := *u.Address
		out.Address = &v
	}
	if u.PhoneNumber != nil {
		v := *u.PhoneNumber
		out.PhoneNumber = &v
	}

	return out
}
