package booking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const UnknownSpecialist = "Unknown Specialist"

type FormOptions struct {
	Services    viewmodel.Select
	Specialists viewmodel.Select
}

// LoadBookingForm builds the service and specialist selects of the
// booking page.
type LoadBookingForm struct {
	services catalog.Repository
	profiles profile.Repository
}

func NewLoadBookingForm(
	services catalog.Repository,
	profiles profile.Repository,
) *LoadBookingForm {
	return &LoadBookingForm{
		services: services,
		profiles: profiles,
	}
}

// Execute marks the options matching selected so a failed submission
// re-renders with the user's choices.
func (uc *LoadBookingForm) Execute(
	ctx context.Context,
	selected viewmodel.BookingForm,
) (FormOptions, error) {

	services, err := uc.services.ListServices(ctx)
	if err != nil {
		return FormOptions{}, err
	}

	specialists, err := uc.profiles.ListByRole(ctx, "staff")
	if err != nil {
		return FormOptions{}, err
	}

	return FormOptions{
		Services:    ServiceSelect(services, selected.ServiceID),
		Specialists: SpecialistSelect(specialists, selected.EmployeeID),
	}, nil
}

func ServiceSelect(services []models.Service, selected string) viewmodel.Select {
	if len(services) == 0 {
		return viewmodel.Select{Placeholder: "No services available", Disabled: true}
	}

	sel := viewmodel.Select{Placeholder: "Choose a service..."}
	for _, s := range services {
		id := s.ID.String()
		sel.Options = append(sel.Options, viewmodel.Option{
			Value:    id,
			Label:    ServiceLabel(s),
			Selected: id == selected,
		})
	}
	return sel
}

func SpecialistSelect(specialists []models.Profile, selected string) viewmodel.Select {
	if len(specialists) == 0 {
		return viewmodel.Select{Placeholder: "No specialists available", Disabled: true}
	}

	sel := viewmodel.Select{Placeholder: "Choose a specialist..."}
	for _, p := range specialists {
		label := p.FullName
		if label == "" {
			label = UnknownSpecialist
		}
		id := p.ID.String()
		sel.Options = append(sel.Options, viewmodel.Option{
			Value:    id,
			Label:    label,
			Selected: id == selected,
		})
	}
	return sel
}

// ServiceLabel renders "Name - $Price (N min)".
func ServiceLabel(s models.Service) string {
	return fmt.Sprintf("%s - $%s (%d min)",
		s.Name,
		strconv.FormatFloat(s.Price, 'f', -1, 64),
		s.DurationMinutes,
	)
}
