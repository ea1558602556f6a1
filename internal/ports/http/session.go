package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/config"
)

type loginRequest struct {
	WalletKey     string `json:"walletKey"`
	DecryptionKey string `json:"decryptionKey"`
}

type loginResponse struct {
	SessionID string `json:"sessionId"`
}

func (ser server) login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ser.badRequest(w, "failed to decode the login request: "+err.Error())
		return
	}
	if normalize(request.WalletKey) == "" || normalize(request.DecryptionKey) == "" {
		ser.badRequest(w, "both walletKey and decryptionKey need to be given")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	id, err := ser.app.Login(ctx, normalize(request.WalletKey), normalize(request.DecryptionKey))
	if errors.Is(err, app.ErrNotOfficial) {
		ser.logger.Warn("login refused: " + err.Error())
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(err.Error()))
		return
	}
	if err != nil {
		ser.unauthorized(w, "login failed: "+err.Error())
		return
	}

	ser.respondJSON(w, loginResponse{SessionID: id})
}

func (ser server) logout(w http.ResponseWriter, r *http.Request) {
	id := normalize(mux.Vars(r)["sessionID"])
	ser.app.Logout(id)
	ser.logger.Debug("session dropped", zap.String("sessionID", id))

	w.WriteHeader(http.StatusNoContent)
}

func (ser server) respondJSON(w http.ResponseWriter, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		ser.serverError(w, "marshalling the response failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(response); err != nil {
		ser.serverError(w, "failed to write the response: "+err.Error())
		return
	}
}
