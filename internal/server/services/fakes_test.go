package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/registre/internal/server/models"
)

type fakeRepo struct {
	mu      sync.Mutex
	list    []models.Record
	getErr  error
	addErr  error
	remErr  error
	clrErr  error
	removed []string
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.Record(nil), f.list...), nil
}

func (f *fakeRepo) Add(ctx context.Context, r *models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.list = append([]models.Record{*r}, f.list...)
	return nil
}

func (f *fakeRepo) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remErr != nil {
		return f.remErr
	}
	f.removed = append(f.removed, id)
	kept := f.list[:0]
	for _, r := range f.list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.list = kept
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clrErr != nil {
		return f.clrErr
	}
	f.list = nil
	return nil
}

type fakeEnricher struct {
	profile models.Profile
	calls   [][2]string
}

func (f *fakeEnricher) GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile {
	f.calls = append(f.calls, [2]string{firstName, lastName})
	return f.profile
}
