package app

import (
	"context"
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"land-registry/internal/deedcrypt"
	"land-registry/internal/geo"
	"land-registry/internal/model"
)

type RegisterLandParams struct {
	OwnerFullName  string
	PlotNumber     string
	GpsCoordinates string
	SizeAcres      float64

	DeedFileName    string
	DeedContentType string
	DeedContent     []byte

	// the land owner's wallet key, used once to sign the registration
	SignerKeyHex string
}

func (p RegisterLandParams) Validate() error {
	var err error

	if p.OwnerFullName == "" {
		err = multierr.Append(err, errors.New("ownerFullName is missing"))
	}
	if p.PlotNumber == "" {
		err = multierr.Append(err, errors.New("plotNumber is missing"))
	}
	if !geo.IsValidDDLocation(p.GpsCoordinates) {
		err = multierr.Append(err, errors.New("gpsCoordinates is not a valid decimal-degree pair"))
	}
	if p.SizeAcres <= 0 {
		err = multierr.Append(err, errors.New("landSize must be a positive acre amount"))
	}
	if len(p.DeedContent) == 0 {
		err = multierr.Append(err, errors.New("the title deed file is missing or empty"))
	}
	if p.SignerKeyHex == "" {
		err = multierr.Append(err, errors.New("the signer key is missing"))
	}

	return err
}

// RegisterLand runs the whole submission pipeline: encrypt the deed for
// the admin key, pin the ciphertext, then register the claim with the CID.
// The upload always precedes the contract write that references it. Any
// failure aborts the pipeline; the user resubmits explicitly.
func (a *App) RegisterLand(ctx context.Context, params RegisterLandParams) (uint64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	adminPublicKey, err := a.chain.AdminPublicKey(ctx)
	if err != nil {
		return 0, err
	}

	envelope := model.NewDeedEnvelope(params.DeedFileName, params.DeedContentType, params.DeedContent)
	encrypted, err := deedcrypt.EncryptEnvelope(envelope, adminPublicKey)
	if err != nil {
		return 0, err
	}

	// the ciphertext is pinned as a plain text file next to the
	// original name
	cid, err := a.deeds.UploadFile(ctx, params.DeedFileName+".txt", []byte(encrypted))
	if err != nil {
		return 0, err
	}

	a.logger.Info("deed pinned, registering the claim",
		zap.String("plotNumber", params.PlotNumber), zap.String("cid", cid))

	id, err := a.chain.RegisterLand(ctx, params.SignerKeyHex, params.PlotNumber,
		model.AcresToChainUnits(params.SizeAcres), params.GpsCoordinates, cid, params.OwnerFullName)
	if err != nil {
		return 0, err
	}

	return id, nil
}
