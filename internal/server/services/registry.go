package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/enrich"
	"github.com/dmitrijs2005/registre/internal/server/models"
	"github.com/google/uuid"
)

// Registry implements the registration operations shared by the HTTP page,
// the JSON API and the gRPC API.
type Registry struct {
	store    *RecordStore
	enricher enrich.Enricher
	logger   logging.Logger

	newID func() string
	now   func() time.Time
}

func NewRegistry(store *RecordStore, enricher enrich.Enricher, logger logging.Logger) *Registry {
	return &Registry{
		store:    store,
		enricher: enricher,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// List returns all records newest first. It never fails.
func (r *Registry) List(ctx context.Context) []models.Record {
	return r.store.GetAll(ctx)
}

// Register stores a plain record for the given names.
func (r *Registry) Register(ctx context.Context, firstName, lastName string) (*models.Record, error) {
	first, last, err := normalizeNames(firstName, lastName)
	if err != nil {
		return nil, err
	}

	rec := r.newRecord(first, last)
	if err := r.store.Add(ctx, rec); err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "record added", "id", rec.ID)
	return rec, nil
}

// RegisterWithProfile generates a role and bio before storing the record.
// Generation cannot fail; a fallback profile is used instead.
func (r *Registry) RegisterWithProfile(ctx context.Context, firstName, lastName string) (*models.Record, error) {
	first, last, err := normalizeNames(firstName, lastName)
	if err != nil {
		return nil, err
	}

	p := r.enricher.GenerateProfile(ctx, first, last)

	rec := r.newRecord(first, last)
	rec.Role = p.Role
	rec.Bio = p.Bio
	if err := r.store.Add(ctx, rec); err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "record added", "id", rec.ID, "enriched", true)
	return rec, nil
}

func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, id)
}

func (r *Registry) ClearAll(ctx context.Context) error {
	return r.store.Clear(ctx)
}

func (r *Registry) GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile {
	return r.enricher.GenerateProfile(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
}

func (r *Registry) newRecord(first, last string) *models.Record {
	return &models.Record{
		ID:        r.newID(),
		FirstName: first,
		LastName:  last,
		CreatedAt: r.now().UnixMilli(),
	}
}

func normalizeNames(firstName, lastName string) (string, string, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return "", "", fmt.Errorf("%w: first and last name are required", common.ErrorValidation)
	}
	return first, last, nil
}
