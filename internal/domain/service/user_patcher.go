package service

import (
	"userapi/internal/domain/entity"
)

// UserPatcher merges a sparse patch into an existing user.
type UserPatcher interface {
	// Patch overwrites every field present in patch on target and leaves the
	// others untouched. Applying the same patch twice is the same as applying it once.
	Patch(target *entity.User, patch *entity.UserPatch)
}
