package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/config"
	"land-registry/internal/geo"
	"land-registry/internal/model"
	"land-registry/internal/session"
)

type retrievedLand struct {
	ID              uint64  `json:"id"`
	OwnerFullName   string  `json:"ownerFullName"`
	PlotNumber      string  `json:"plotNumber"`
	SizeAcres       float64 `json:"sizeAcres"`
	GpsCoordinates  string  `json:"gpsCoordinates"`
	GpsDMS          string  `json:"gpsDms"`
	Status          string  `json:"status"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
	OwnerAddress    string  `json:"ownerAddress"`
	Timestamp       string  `json:"timestamp"`

	// approve/reject workflow state, only set on the detail view
	SubmissionState string `json:"submissionState,omitempty"`
}

func (ret *retrievedLand) assign(record model.LandRecord) {
	ret.ID = record.ID
	ret.OwnerFullName = record.OwnerFullName
	ret.PlotNumber = record.PlotNumber
	ret.SizeAcres = record.SizeInAcres()
	ret.GpsCoordinates = record.GpsCoordinates
	ret.Status = record.Status.Label()
	ret.RejectionReason = record.RejectionReason
	ret.OwnerAddress = record.OwnerAddress
	ret.Timestamp = record.Timestamp.Format(time.RFC3339)

	// records written before coordinate validation may hold junk,
	// those are displayed as stored
	if dms, err := geo.ParseDDAndConvertToDMS(record.GpsCoordinates); err == nil {
		ret.GpsDMS = dms
	}
}

type registeredLandResponse struct {
	ID uint64 `json:"id"`
}

func (ser server) registerLand(w http.ResponseWriter, r *http.Request) {

	params, err := ser.readRegisterLandParams(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	id, err := ser.app.RegisterLand(ctx, params)
	if err != nil {
		ser.serverError(w, "registering the land failed: "+err.Error())
		return
	}

	response, err := json.Marshal(registeredLandResponse{ID: id})
	if err != nil {
		ser.serverError(w, "marshalling the response failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(response); err != nil {
		ser.logger.Error("failed to write the response: " + err.Error())
	}
}

func (ser server) readRegisterLandParams(r *http.Request) (app.RegisterLandParams, error) {
	// max file size is 10MB
	if err := r.ParseMultipartForm(10e7); err != nil {
		return app.RegisterLandParams{}, errors.New("failed to parse the form: " + err.Error())
	}

	var err error

	ownerFullName := normalize(r.FormValue("ownerFullName"))
	if ownerFullName == "" {
		err = multierr.Append(err, errors.New("ownerFullName is missing"))
	}

	plotNumber := normalize(r.FormValue("plotNumber"))
	if plotNumber == "" {
		err = multierr.Append(err, errors.New("plotNumber is missing"))
	}

	walletKey := normalize(r.FormValue("walletKey"))
	if walletKey == "" {
		err = multierr.Append(err, errors.New("walletKey is missing"))
	}

	sizeAcres, convErr := strconv.ParseFloat(normalize(r.FormValue("landSize")), 64)
	if convErr != nil {
		err = multierr.Append(err, errors.New("landSize is not a number: "+convErr.Error()))
	}

	gpsCoordinates := normalize(r.FormValue("gpsCoordinates"))

	file, handler, fileErr := r.FormFile("titleDeed")
	if fileErr != nil {
		err = multierr.Append(err, errors.New("failed to get the title deed file from form: "+fileErr.Error()))
	} else {
		defer file.Close()
	}

	if err != nil {
		return app.RegisterLandParams{}, err
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return app.RegisterLandParams{}, errors.New("failed to read the title deed file: " + err.Error())
	}

	if len(content) != int(handler.Size) {
		return app.RegisterLandParams{}, fmt.Errorf("upload error: size of received file: %v, size declared in the header: %v", len(content), handler.Size)
	}

	ser.logger.Info(fmt.Sprintf("received title deed: %s, size %v", handler.Filename, handler.Size))

	params := app.RegisterLandParams{
		OwnerFullName:   ownerFullName,
		PlotNumber:      plotNumber,
		GpsCoordinates:  gpsCoordinates,
		SizeAcres:       sizeAcres,
		DeedFileName:    handler.Filename,
		DeedContentType: handler.Header.Get("Content-Type"),
		DeedContent:     content,
		SignerKeyHex:    walletKey,
	}
	if err := params.Validate(); err != nil {
		return app.RegisterLandParams{}, err
	}

	return params, nil
}

func (ser server) getLands(w http.ResponseWriter, r *http.Request) {
	owner := normalize(r.URL.Query().Get("owner"))
	ser.logger.Debug("getting the lands, owner {" + owner + "}")

	var (
		records []model.LandRecord
		err     error
	)
	if owner == "" {
		records, err = ser.app.GetAllLands(r.Context())
	} else {
		records, err = ser.app.GetLandsByOwner(r.Context(), owner)
	}
	if err != nil {
		ser.serverError(w, "getting the lands failed: "+err.Error())
		return
	}

	retrieved := make([]retrievedLand, len(records))
	for i, record := range records {
		retrieved[i].assign(record)
	}

	ser.respondJSON(w, retrieved)
}

func (ser server) getLand(w http.ResponseWriter, r *http.Request) {
	id, err := readLandID(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	record, err := ser.app.GetLandByID(r.Context(), id)
	if err != nil {
		ser.serverError(w, "getting the land failed: "+err.Error())
		return
	}

	var retrieved retrievedLand
	retrieved.assign(record)
	retrieved.SubmissionState = ser.app.SubmissionState(id).String()
	ser.respondJSON(w, retrieved)
}

func (ser server) downloadDeed(w http.ResponseWriter, r *http.Request) {
	id, err := readLandID(r)
	if err != nil {
		ser.badRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.GetRequestTimeout())
	defer cancel()

	download, err := ser.app.DownloadDeed(ctx, sessionID(r), id)
	if errors.Is(err, session.ErrNoSessionKey) {
		ser.unauthorized(w, "deed download needs an active session")
		return
	}
	if err != nil {
		ser.serverError(w, "downloading the deed failed: "+err.Error())
		return
	}

	ser.logger.Info("serving a decrypted deed",
		zap.Uint64("landID", id), zap.String("fileName", download.FileName))

	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+download.FileName+`"`)
	if _, err := w.Write(download.Content); err != nil {
		ser.logger.Error("failed to write the deed response: " + err.Error())
	}
}

func readLandID(r *http.Request) (uint64, error) {
	raw := normalize(mux.Vars(r)["landID"])
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New("landID is not a valid record id: " + err.Error())
	}

	return id, nil
}
