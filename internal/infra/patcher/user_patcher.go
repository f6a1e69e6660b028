// Package patcher implements field-by-field merging of user patches.
package patcher

import (
	"userapi/internal/domain/entity"
	"userapi/internal/domain/service"
)

// userPatcher implements service.UserPatcher.
type userPatcher struct{}

// NewUserPatcher is the constructor for userPatcher.
func NewUserPatcher() service.UserPatcher {
	return userPatcher{}
}

// Patch writes every present field of patch onto target.
func (userPatcher) Patch(target *entity.User, patch *entity.UserPatch) {
	if target == nil || patch == nil {
		return
	}

	if v, ok := patch.Name.Get(); ok {
		target.Name = v
	}
	if v, ok := patch.Email.Get(); ok {
		target.Email = v
	}
	if v, ok := patch.BirthDate.Get(); ok {
		target.BirthDate = v
	}
	if v, ok := patch.Address.Get(); ok {
		target.Address = clone(v)
	}
	if v, ok := patch.PhoneNumber.Get(); ok {
		target.PhoneNumber = clone(v)
	}
}

// clone detaches the stored pointer from the caller's patch.
func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
