package guard

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
)

// ProfileRoles reads roles from the profiles table.
type ProfileRoles struct {
	repo profile.Repository
}

func NewProfileRoles(repo profile.Repository) *ProfileRoles {
	return &ProfileRoles{repo: repo}
}

func (r *ProfileRoles) FetchRole(ctx context.Context, userID uuid.UUID) (access.Role, error) {
	p, err := r.repo.GetProfile(ctx, userID)
	if err != nil {
		return access.RoleUnresolved, err
	}
	return access.ParseRole(p.Role), nil
}
