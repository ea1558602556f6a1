package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"land-registry/internal/deedcrypt"
	"land-registry/internal/model"
)

// DeedDownload is a decrypted title deed ready to be served as a file.
type DeedDownload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DownloadDeed fetches the encrypted deed of a record by its CID, decrypts
// it with the official's session key and reconstructs the original file.
// The download name is re-derived from the record, not taken from the
// stored envelope.
func (a *App) DownloadDeed(ctx context.Context, sessionID string, landID uint64) (DeedDownload, error) {
	entry, err := a.sessions.Get(sessionID)
	if err != nil {
		// no key, no inline error: the caller redirects to login
		return DeedDownload{}, err
	}

	record, err := a.GetLandByID(ctx, landID)
	if err != nil {
		return DeedDownload{}, err
	}
	if record.EncryptedTitleDeedHash == "" {
		return DeedDownload{}, errors.New("the record carries no title deed CID")
	}

	ciphertext, err := a.deeds.FetchText(ctx, record.EncryptedTitleDeedHash)
	if err != nil {
		return DeedDownload{}, err
	}

	envelope, err := deedcrypt.DecryptEnvelope(ciphertext, entry.DecryptionKeyHex)
	if err != nil {
		return DeedDownload{}, err
	}

	content, err := envelope.DecodeContent()
	if err != nil {
		return DeedDownload{}, err
	}

	a.logger.Info("deed decrypted", zap.Uint64("id", landID), zap.String("plotNumber", record.PlotNumber))

	return DeedDownload{
		FileName:    model.DeedFileName(record.PlotNumber, record.OwnerFullName, envelope.Name),
		ContentType: envelope.Type,
		Content:     content,
	}, nil
}
