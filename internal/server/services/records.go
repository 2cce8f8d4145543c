// Package services contains server-side business logic: the record store
// failure policy and the registry operations used by both transports.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/models"
	"github.com/dmitrijs2005/registre/internal/server/repositories/records"
)

// RecordStore applies the store failure policy on top of a Repository:
// read failures are logged and read as an empty list, write failures are
// returned.
type RecordStore struct {
	repo   records.Repository
	logger logging.Logger
}

func NewRecordStore(repo records.Repository, logger logging.Logger) *RecordStore {
	return &RecordStore{repo: repo, logger: logger}
}

// GetAll returns every record newest first, or an empty list if the
// backend cannot be read.
func (s *RecordStore) GetAll(ctx context.Context) []models.Record {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "error fetching records", "error", err)
		return []models.Record{}
	}
	if list == nil {
		return []models.Record{}
	}
	return list
}

func (s *RecordStore) Add(ctx context.Context, record *models.Record) error {
	if err := s.repo.Add(ctx, record); err != nil {
		return fmt.Errorf("error adding record: %w", err)
	}
	return nil
}

func (s *RecordStore) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("error removing record %s: %w", id, err)
	}
	return nil
}

func (s *RecordStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing records: %w", err)
	}
	return nil
}
