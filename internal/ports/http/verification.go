package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/config"
	"land-registry/internal/session"
	"land-registry/internal/verification"
)

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (ser server) approveLand(w http.ResponseWriter, r *http.Request) {
	id, err := readLandID(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	ser.respondSettlement(w, id, "approve",
		ser.app.ApproveLand(ctx, sessionID(r), id))
}

func (ser server) rejectLand(w http.ResponseWriter, r *http.Request) {
	id, err := readLandID(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	var request rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ser.badRequest(w, "failed to decode the rejection request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	ser.respondSettlement(w, id, "reject",
		ser.app.RejectLand(ctx, sessionID(r), id, request.Reason))
}

func (ser server) respondSettlement(w http.ResponseWriter, id uint64, action string, err error) {
	switch {
	case err == nil:
		ser.logger.Info("land record settled",
			zap.Uint64("landID", id), zap.String("action", action))
		w.WriteHeader(http.StatusNoContent)

	case errors.Is(err, session.ErrNoSessionKey):
		ser.unauthorized(w, action+" needs an active session")

	case errors.Is(err, app.ErrEmptyReason):
		ser.badRequest(w, err.Error())

	case errors.Is(err, app.ErrNotPending),
		errors.Is(err, verification.ErrSubmissionInFlight),
		errors.Is(err, verification.ErrAlreadySettled):
		ser.conflict(w, err.Error())

	default:
		ser.serverError(w, action+" failed: "+err.Error())
	}
}
