package turf

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	domain "github.com/BruksfildServices01/turf-booking/internal/domain/turf"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// TurfInput carries the owner's edits. A nil field keeps the stored value
// on update; on create it means empty, or the configured default price.
type TurfInput struct {
	Name         *string
	City         *string
	Address      *string
	Description  *string
	Image        *string
	PricePerHour *float64
}

// mergeOnto overlays the provided fields on the current turf attributes.
func (in TurfInput) mergeOnto(t *models.Turf) domain.Details {
	d := domain.Details{
		Name:         t.Name,
		City:         t.City,
		Address:      t.Address,
		Description:  t.Description,
		Image:        t.Image,
		PricePerHour: t.PricePerHour,
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Name, in.Name)
	set(&d.City, in.City)
	set(&d.Address, in.Address)
	set(&d.Description, in.Description)
	set(&d.Image, in.Image)

	if in.PricePerHour != nil {
		d.PricePerHour = *in.PricePerHour
	}
	return d.Normalize()
}

type ManageTurfs struct {
	repo         domain.Repository
	audit        audit.Sink
	defaultPrice float64
}

func NewManageTurfs(
	repo domain.Repository,
	audit audit.Sink,
	defaultPrice float64,
) *ManageTurfs {
	if defaultPrice <= 0 {
		defaultPrice = 500
	}
	return &ManageTurfs{
		repo:         repo,
		audit:        audit,
		defaultPrice: defaultPrice,
	}
}

func (uc *ManageTurfs) Create(
	ctx context.Context,
	ownerID uint,
	in TurfInput,
) (*models.Turf, error) {

	t := &models.Turf{OwnerID: ownerID, PricePerHour: uc.defaultPrice}

	d := in.mergeOnto(t)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.Apply(t)

	if err := uc.repo.CreateTurf(ctx, t); err != nil {
		return nil, err
	}

	slog.Info("turf created", "turf_id", t.ID, "owner_id", ownerID)
	uc.dispatch(t, ownerID, "turf_created", nil)

	return t, nil
}

func (uc *ManageTurfs) Update(
	ctx context.Context,
	ownerID uint,
	turfID uint,
	in TurfInput,
) (*models.Turf, error) {

	t, err := uc.repo.GetTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	if err := domain.AssertOwner(t, ownerID); err != nil {
		return nil, err
	}

	d := in.mergeOnto(t)
	if err := d.Validate(); err != nil {
		return nil, err
	}

	before := t.PricePerHour
	d.Apply(t)

	if err := uc.repo.UpdateTurf(ctx, t); err != nil {
		return nil, err
	}

	uc.dispatch(t, ownerID, "turf_updated", map[string]any{
		"price_before": before,
		"price_after":  t.PricePerHour,
	})

	return t, nil
}

// Delete removes the turf together with its slots and bookings.
func (uc *ManageTurfs) Delete(
	ctx context.Context,
	ownerID uint,
	turfID uint,
) error {

	t, err := uc.repo.GetTurf(ctx, turfID)
	if err != nil {
		return err
	}

	if err := domain.AssertOwner(t, ownerID); err != nil {
		return err
	}

	if err := uc.repo.DeleteTurf(ctx, t.ID); err != nil {
		return err
	}

	slog.Info("turf deleted", "turf_id", t.ID, "owner_id", ownerID)
	uc.dispatch(t, ownerID, "turf_deleted", map[string]any{"name": t.Name})

	return nil
}

func (uc *ManageTurfs) dispatch(t *models.Turf, userID uint, action string, meta map[string]any) {
	turfID := t.ID
	uc.audit.Dispatch(audit.Event{
		OwnerID:  t.OwnerID,
		UserID:   &userID,
		TurfID:   &turfID,
		Action:   action,
		Entity:   "turf",
		EntityID: &turfID,
		Metadata: meta,
	})
}
