package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"land-registry/internal/model"
)

var ErrNotCached = errors.New("land record not in the cache")

// CacheLand stores a settled record snapshot. Pending records are refused:
// they can still change on chain, caching them would serve stale state.
func (r Repository) CacheLand(ctx context.Context, record model.LandRecord) error {
	if !record.IsSettled() {
		return errors.New("refusing to cache a record that is still pending")
	}

	stored := newStoredLand(record)
	_, err := r.lands().ReplaceOne(ctx, bson.M{"_id": stored.ID}, stored, options.Replace().SetUpsert(true))
	if err != nil {
		r.logger.Error("failed to cache the land record: "+err.Error(), zap.Uint64("id", record.ID))
		return err
	}

	return nil
}

// GetLand returns a cached snapshot, ErrNotCached when the record was
// never settled or never seen.
func (r Repository) GetLand(ctx context.Context, id uint64) (model.LandRecord, error) {
	var stored storedLand
	err := r.lands().FindOne(ctx, bson.M{"_id": int64(id)}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.LandRecord{}, ErrNotCached
		}
		return model.LandRecord{}, errors.New("cache lookup failed: " + err.Error())
	}

	return stored.toModel(), nil
}
