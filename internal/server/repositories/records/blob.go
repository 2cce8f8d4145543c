package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/server/models"
	"github.com/dmitrijs2005/registre/internal/server/repositories/blob"
)

// BlobRepository implements Repository as a single JSON blob.
type BlobRepository struct {
	keeper blob.Keeper
	key    string
}

func NewBlobRepository(keeper blob.Keeper, key string) *BlobRepository {
	return &BlobRepository{keeper: keeper, key: key}
}

func (r *BlobRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	data, err := r.keeper.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return DecodeList(data)
}

func (r *BlobRepository) Add(ctx context.Context, record *models.Record) error {
	return r.keeper.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		list, err := DecodeList(current)
		if err != nil {
			return nil, err
		}
		return EncodeList(append([]models.Record{*record}, list...))
	})
}

func (r *BlobRepository) Remove(ctx context.Context, id string) error {
	return r.keeper.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		list, err := DecodeList(current)
		if err != nil {
			return nil, err
		}

		kept := list[:0]
		for _, rec := range list {
			if rec.ID != id {
				kept = append(kept, rec)
			}
		}
		return EncodeList(kept)
	})
}

func (r *BlobRepository) Clear(ctx context.Context) error {
	return r.keeper.Delete(ctx, r.key)
}

// EncodeList serializes records in the stored blob format.
func EncodeList(list []models.Record) ([]byte, error) {
	if list == nil {
		list = []models.Record{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return b, nil
}

// DecodeList parses a stored blob. An absent or empty blob is an empty list.
func DecodeList(data []byte) ([]models.Record, error) {
	list := []models.Record{}
	if len(data) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if list == nil {
		list = []models.Record{}
	}
	return list, nil
}
