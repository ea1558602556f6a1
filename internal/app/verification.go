package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"land-registry/internal/model"
)

// ApproveLand moves a pending record to approved. The submission is
// tracked so a second approve or reject for the same record is refused
// while one is in flight; a settlement error returns the record to an
// actionable state.
func (a *App) ApproveLand(ctx context.Context, sessionID string, id uint64) error {
	return a.settle(ctx, sessionID, id, "")
}

// RejectLand moves a pending record to rejected. The reason is required:
// an empty one never reaches the contract.
func (a *App) RejectLand(ctx context.Context, sessionID string, id uint64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	return a.settle(ctx, sessionID, id, reason)
}

func (a *App) settle(ctx context.Context, sessionID string, id uint64, rejectReason string) error {
	entry, err := a.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	record, err := a.chain.GetLandByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Status != model.StatusPending {
		return ErrNotPending
	}

	if err := a.submissions.Begin(id); err != nil {
		return err
	}

	if rejectReason == "" {
		err = a.chain.VerifyLand(ctx, entry.SignerKeyHex, id)
	} else {
		err = a.chain.RejectLand(ctx, entry.SignerKeyHex, id, rejectReason)
	}
	a.submissions.Finish(id, err)

	if err != nil {
		a.logger.Error("settling the record failed: "+err.Error(), zap.Uint64("id", id))
		return err
	}

	a.logger.Info("record settled", zap.Uint64("id", id),
		zap.String("official", entry.WalletAddress), zap.Bool("rejected", rejectReason != ""))

	return nil
}
