package app

import (
	"context"

	"go.uber.org/zap"

	"land-registry/internal/blockchain"
	"land-registry/internal/model"
)

// IssueProof generates an ownership proof for an approved record. The
// caller signs with the land owner's key; the issued hash comes back from
// the ProofGenerated event of the mined transaction.
func (a *App) IssueProof(ctx context.Context, signerKeyHex string, id uint64) (string, error) {
	record, err := a.GetLandByID(ctx, id)
	if err != nil {
		return "", err
	}
	if record.Status != model.StatusApproved {
		return "", ErrNotApproved
	}

	proofHash, err := a.chain.GenerateProof(ctx, signerKeyHex, id)
	if err != nil {
		return "", err
	}

	a.logger.Info("proof issued", zap.Uint64("id", id))

	return proofHash.Hex(), nil
}

// VerifyProof resolves a proof hash back to its land record. The contract
// does not return the id from the verifyProof call; the ProofUsed event
// stream is the source of truth. The watcher starts before the write so
// the event can not slip past, the wait is bounded by the configured
// timeout, and cancelling the request context tears the subscription down.
func (a *App) VerifyProof(ctx context.Context, signerKeyHex, proof string) (model.LandRecord, error) {
	proofHash, err := blockchain.ParseProofHash(proof)
	if err != nil {
		return model.LandRecord{}, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, a.proofWaitTimeout)
	defer cancel()

	events, subErrs, err := a.chain.WatchProofUsed(waitCtx)
	if err != nil {
		return model.LandRecord{}, err
	}

	if err := a.chain.SubmitProof(ctx, signerKeyHex, proofHash); err != nil {
		return model.LandRecord{}, err
	}

	for {
		select {
		case <-waitCtx.Done():
			a.logger.Warn("gave up waiting for the proof event", zap.String("proofHash", proofHash.Hex()))
			return model.LandRecord{}, ErrProofWaitExpired

		case err := <-subErrs:
			return model.LandRecord{}, err

		case event, ok := <-events:
			if !ok {
				return model.LandRecord{}, ErrProofWaitExpired
			}
			if event.ProofHash != [32]byte(proofHash) {
				// someone else's proof, keep listening
				continue
			}

			a.logger.Info("proof resolved", zap.Uint64("id", event.Id.Uint64()))

			return a.GetLandByID(ctx, event.Id.Uint64())
		}
	}
}
