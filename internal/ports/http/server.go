package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/ports/http/middleware/cors"
)

type server struct {
	app        *app.App
	httpServer *http.Server
	addr       string
	logger     *zap.Logger
}

func (ser server) badRequest(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	if _, err := w.Write([]byte(message)); err != nil {
		ser.logger.Error("failed to write a bad request error message: " + err.Error())
	}

	ser.logger.Warn(message)
}

func (ser server) unauthorized(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(message)); err != nil {
		ser.logger.Error("failed to write an unauthorized error message: " + err.Error())
	}

	ser.logger.Warn(message)
}

func (ser server) conflict(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusConflict)
	if _, err := w.Write([]byte(message)); err != nil {
		ser.logger.Error("failed to write a conflict error message: " + err.Error())
	}

	ser.logger.Warn(message)
}

func (ser server) serverError(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write([]byte(message)); err != nil {
		ser.logger.Error("failed to write a server error message: " + err.Error())
	}

	ser.logger.Error(message)
}

func (ser server) registerHandlers(router *mux.Router) {

	router.HandleFunc("/health", healthcheck)

	router.HandleFunc("/api/session", ser.login).Methods(http.MethodPost)
	router.HandleFunc("/api/session/{sessionID}", ser.logout).Methods(http.MethodDelete)

	router.HandleFunc("/api/lands", ser.registerLand).Methods(http.MethodPost)
	router.HandleFunc("/api/lands", ser.getLands).Methods(http.MethodGet)
	router.HandleFunc("/api/lands/{landID}", ser.getLand).Methods(http.MethodGet)
	router.HandleFunc("/api/lands/{landID}/deed", ser.downloadDeed).Methods(http.MethodGet)
	router.HandleFunc("/api/lands/{landID}/approve", ser.approveLand).Methods(http.MethodPost)
	router.HandleFunc("/api/lands/{landID}/reject", ser.rejectLand).Methods(http.MethodPost)
	router.HandleFunc("/api/lands/{landID}/proof", ser.issueProof).Methods(http.MethodPost)

	router.HandleFunc("/api/proofs/verify", ser.verifyProof).Methods(http.MethodPost)

}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("all good here"))
}

func normalize(value string) string {
	return strings.TrimSpace(value)
}

// sessionID extracts the session reference from the Authorization header.
func sessionID(r *http.Request) string {
	return normalize(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
}

func NewServer(logger *zap.Logger, a *app.App, address string) server {
	return server{
		app:    a,
		addr:   address,
		logger: logger,
	}
}

func (ser server) Run() error {
	router := mux.NewRouter()
	ser.registerHandlers(router)

	handler := cors.AddCorsPolicy(router)
	ser.httpServer = &http.Server{
		Handler: handler,
		Addr:    ser.addr,
	}

	return ser.httpServer.ListenAndServe()
}
