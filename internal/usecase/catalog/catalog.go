package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/media"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ImageStore stores service images. A nil ImageStore disables uploads.
type ImageStore interface {
	PutImage(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type Catalog struct {
	repo   domain.Repository
	images ImageStore
	audit  audit.Recorder
	logger zerolog.Logger
}

func New(
	repo domain.Repository,
	images ImageStore,
	audit audit.Recorder,
	logger zerolog.Logger,
) *Catalog {
	return &Catalog{
		repo:   repo,
		images: images,
		audit:  audit,
		logger: logger,
	}
}

// ======================================================
// READ
// ======================================================

func (uc *Catalog) ListServices(ctx context.Context) ([]dto.ServiceRowDTO, error) {
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ServiceRowDTO, 0, len(services))
	for _, s := range services {
		rows = append(rows, uc.ToServiceRow(s))
	}
	return rows, nil
}

// Gallery lists services that have an uploaded image.
func (uc *Catalog) Gallery(ctx context.Context) ([]dto.GalleryItemDTO, error) {
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	var items []dto.GalleryItemDTO
	for _, s := range services {
		url := uc.imageURL(s.ImageKey)
		if url == "" {
			continue
		}
		items = append(items, dto.GalleryItemDTO{
			Title:    s.Name,
			Caption:  s.Description,
			ImageURL: url,
		})
	}
	return items, nil
}

func (uc *Catalog) ToServiceRow(s models.Service) dto.ServiceRowDTO {
	return dto.ServiceRowDTO{
		ID:              s.ID.String(),
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		SpecialistName:  domain.SpecialistName(s),
		ImageURL:        uc.imageURL(s.ImageKey),
	}
}

func (uc *Catalog) imageURL(key string) string {
	if uc.images == nil || key == "" {
		return ""
	}
	return uc.images.URL(key)
}

// ======================================================
// WRITE
// ======================================================

type AddServiceInput struct {
	Name         string
	Description  string
	Price        string
	Duration     string
	SpecialistID string

	// Image is the raw upload; empty when no file was sent.
	Image []byte
}

func (uc *Catalog) AddService(
	ctx context.Context,
	actorID uuid.UUID,
	in AddServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)

	price, perr := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	duration, derr := strconv.Atoi(strings.TrimSpace(in.Duration))

	if name == "" || description == "" || perr != nil || derr != nil || price < 0 || duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	svc := &models.Service{
		ID:              uuid.New(),
		Name:            name,
		Description:     description,
		Price:           price,
		DurationMinutes: duration,
	}

	if raw := strings.TrimSpace(in.SpecialistID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_service")
		}
		svc.SpecialistID = &id
	}

	if len(in.Image) > 0 {
		if uc.images == nil {
			uc.logger.Warn().Msg("image upload ignored, media storage disabled")
		} else {
			key := media.ServiceImageKey(svc.ID.String())
			if err := uc.images.PutImage(ctx, key, in.Image); err != nil {
				if errors.Is(err, media.ErrEmptyImage) || errors.Is(err, media.ErrUnsupportedImage) {
					return nil, httperr.ErrBusiness("invalid_image")
				}
				return nil, err
			}
			svc.ImageKey = key
		}
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		if svc.ImageKey != "" {
			uc.removeImage(ctx, svc.ImageKey)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"name": svc.Name},
	})

	return svc, nil
}

// DeleteService removes the row, then its stored image.
func (uc *Catalog) DeleteService(
	ctx context.Context,
	actorID uuid.UUID,
	serviceID uuid.UUID,
) error {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("service_not_found")
		}
		return err
	}

	if err := uc.repo.DeleteService(ctx, serviceID); err != nil {
		return err
	}

	if svc.ImageKey != "" {
		uc.removeImage(ctx, svc.ImageKey)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"name": svc.Name},
	})
	return nil
}

func (uc *Catalog) removeImage(ctx context.Context, key string) {
	if uc.images == nil {
		return
	}
	if err := uc.images.Delete(ctx, key); err != nil {
		uc.logger.Error().Err(err).Str("key", key).Msg("failed to delete service image")
	}
}
