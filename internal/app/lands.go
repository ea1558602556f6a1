package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"land-registry/internal/model"
	"land-registry/internal/repository/mongodb"
	"land-registry/internal/verification"
)

func (a *App) GetAllLands(ctx context.Context) ([]model.LandRecord, error) {
	return a.chain.GetAllLands(ctx)
}

func (a *App) GetLandsByOwner(ctx context.Context, ownerAddress string) ([]model.LandRecord, error) {
	return a.chain.GetLandsByOwner(ctx, ownerAddress)
}

// GetLandByID serves settled records from the cache when possible and
// falls through to the chain. Fresh settled reads are cached on the way
// out; their immutability makes the snapshot safe forever.
func (a *App) GetLandByID(ctx context.Context, id uint64) (model.LandRecord, error) {
	if a.cache != nil {
		record, err := a.cache.GetLand(ctx, id)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, mongodb.ErrNotCached) {
			a.logger.Warn("record cache lookup failed, reading the chain: "+err.Error(), zap.Uint64("id", id))
		}
	}

	record, err := a.chain.GetLandByID(ctx, id)
	if err != nil {
		return model.LandRecord{}, err
	}

	if a.cache != nil && record.IsSettled() {
		if err := a.cache.CacheLand(ctx, record); err != nil {
			a.logger.Warn("failed to cache the settled record: "+err.Error(), zap.Uint64("id", id))
		}
	}

	return record, nil
}

// SubmissionState exposes the approve/reject workflow state for a record.
func (a *App) SubmissionState(id uint64) verification.State {
	return a.submissions.State(id)
}
