package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/blockchain"
	"land-registry/internal/config"
)

type issueProofRequest struct {
	WalletKey string `json:"walletKey"`
}

type issuedProofResponse struct {
	Proof string `json:"proof"`
}

type verifyProofRequest struct {
	WalletKey string `json:"walletKey"`
	Proof     string `json:"proof"`
}

func (ser server) issueProof(w http.ResponseWriter, r *http.Request) {
	id, err := readLandID(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	var request issueProofRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ser.badRequest(w, "failed to decode the proof request: "+err.Error())
		return
	}
	if normalize(request.WalletKey) == "" {
		ser.badRequest(w, "walletKey is missing")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	proof, err := ser.app.IssueProof(ctx, normalize(request.WalletKey), id)
	if errors.Is(err, app.ErrNotApproved) {
		ser.conflict(w, err.Error())
		return
	}
	if err != nil {
		ser.serverError(w, "issuing the proof failed: "+err.Error())
		return
	}

	ser.logger.Info("proof issued", zap.Uint64("landID", id))

	if normalize(r.URL.Query().Get("format")) == "qr" {
		ser.respondProofQR(w, proof)
		return
	}

	ser.respondJSON(w, issuedProofResponse{Proof: proof})
}

// respondProofQR renders the proof hash as a PNG so the owner can hand it
// over on paper or a phone screen.
func (ser server) respondProofQR(w http.ResponseWriter, proof string) {
	png, err := qrcode.Encode(proof, qrcode.Medium, 256)
	if err != nil {
		ser.serverError(w, "encoding the proof QR code failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		ser.logger.Error("failed to write the QR response: " + err.Error())
	}
}

func (ser server) verifyProof(w http.ResponseWriter, r *http.Request) {
	var request verifyProofRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ser.badRequest(w, "failed to decode the verification request: "+err.Error())
		return
	}
	if normalize(request.WalletKey) == "" {
		ser.badRequest(w, "walletKey is missing")
		return
	}

	proof := normalize(request.Proof)
	if !blockchain.IsValidProofHash(proof) {
		ser.badRequest(w, "proof must be a 66 character 0x-prefixed hash")
		return
	}

	// the wait budget is owned by the service, the request context only
	// covers client disconnects
	record, err := ser.app.VerifyProof(r.Context(), normalize(request.WalletKey), proof)
	if errors.Is(err, app.ErrProofWaitExpired) {
		ser.logger.Warn("proof verification timed out", zap.String("proof", proof))
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte(err.Error()))
		return
	}
	if err != nil {
		ser.serverError(w, "verifying the proof failed: "+err.Error())
		return
	}

	var retrieved retrievedLand
	retrieved.assign(record)
	ser.respondJSON(w, retrieved)
}
