package profile

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/validators"
)

const FormName = "profile"

type UpdateInput struct {
	FullName string `validate:"required,max=100"`
	Phone    string `validate:"required,phone"`
}

type Profiles struct {
	repo     domain.Repository
	validate *validator.Validate
}

func New(repo domain.Repository) *Profiles {
	return &Profiles{
		repo:     repo,
		validate: validators.New(),
	}
}

func (uc *Profiles) Load(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return uc.repo.GetProfile(ctx, userID)
}

// Update trims both fields and writes full_name and phone only. Empty
// fields fail with missing_fields before any write.
func (uc *Profiles) Update(ctx context.Context, userID uuid.UUID, in UpdateInput) (UpdateInput, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.FullName == "" || in.Phone == "" {
		return in, httperr.ErrBusiness("missing_fields")
	}
	if err := uc.validate.Struct(in); err != nil {
		return in, httperr.ErrBusiness("invalid_contact")
	}

	if err := uc.repo.UpdateContact(ctx, userID, in.FullName, in.Phone); err != nil {
		return in, err
	}
	return in, nil
}
