package http

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"land-registry/internal/app"
	"land-registry/internal/blockchain"
	"land-registry/internal/model"
	"land-registry/internal/session"
	"land-registry/internal/verification"
)

func TestSessionIDFromHeader(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/lands/1/deed", nil)
	request.Header.Set("Authorization", "Bearer  abc-123 ")

	assert.Equal(t, "abc-123", sessionID(request))

	request.Header.Del("Authorization")
	assert.Equal(t, "", sessionID(request))
}

func TestReadLandID(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		id, err := readLandID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, uint64(42), id)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/lands/42", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/lands/forty-two", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRespondSettlementStatusMapping(t *testing.T) {
	ser := server{logger: zap.NewNop()}

	testCases := []struct {
		err  error
		code int
	}{
		{nil, http.StatusNoContent},
		{session.ErrNoSessionKey, http.StatusUnauthorized},
		{app.ErrEmptyReason, http.StatusBadRequest},
		{app.ErrNotPending, http.StatusConflict},
		{verification.ErrSubmissionInFlight, http.StatusConflict},
		{verification.ErrAlreadySettled, http.StatusConflict},
		{errors.New("transaction reverted"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		recorder := httptest.NewRecorder()
		ser.respondSettlement(recorder, 1, "approve", tc.err)
		assert.Equal(t, tc.code, recorder.Code, "err: %v", tc.err)
	}
}

func TestHealthcheck(t *testing.T) {
	recorder := httptest.NewRecorder()
	healthcheck(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "all good here", recorder.Body.String())
}

func TestReadRegisterLandParamsValidation(t *testing.T) {
	ser := server{logger: zap.NewNop()}

	// coordinates out of range never reach the service layer
	request := newRegisterRequest(t, map[string]string{
		"ownerFullName":  "John Doe",
		"plotNumber":     "PLT-2023-001",
		"gpsCoordinates": "91,0",
		"landSize":       "2.5",
		"walletKey":      "aa",
	}, "deed.pdf", []byte("deed"))
	_, err := ser.readRegisterLandParams(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimal-degree")

	// a field error with a well formed file part still fails cleanly
	request = newRegisterRequest(t, map[string]string{
		"ownerFullName":  "John Doe",
		"gpsCoordinates": "0,0",
		"landSize":       "2.5",
		"walletKey":      "aa",
	}, "deed.pdf", []byte("deed"))
	_, err = ser.readRegisterLandParams(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plotNumber")

	request = newRegisterRequest(t, map[string]string{
		"ownerFullName":  "John Doe",
		"plotNumber":     "PLT-2023-001",
		"gpsCoordinates": "0,0",
		"landSize":       "-1",
		"walletKey":      "aa",
	}, "deed.pdf", []byte("deed"))
	_, err = ser.readRegisterLandParams(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "landSize")
}

func TestGetLandExposesSubmissionState(t *testing.T) {
	chain := stubChain{record: model.LandRecord{
		ID: 7, Status: model.StatusPending, LandSize: big.NewInt(250000),
	}}
	a := app.NewApp(zap.NewNop(), chain, nil, nil,
		session.NewStore(zap.NewNop(), time.Minute), time.Second)
	ser := NewServer(zap.NewNop(), a, ":0")

	router := mux.NewRouter()
	router.HandleFunc("/api/lands/{landID}", ser.getLand)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/lands/7", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"submissionState":"idle"`)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
}

func newRegisterRequest(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("titleDeed", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/lands", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

// stubChain serves the read paths of the land detail view.
type stubChain struct {
	record model.LandRecord
}

func (s stubChain) AdminPublicKey(ctx context.Context) (string, error) { return "", nil }

func (s stubChain) IsGovernmentOfficial(ctx context.Context, walletAddress string) (bool, error) {
	return false, nil
}

func (s stubChain) GetLandByID(ctx context.Context, id uint64) (model.LandRecord, error) {
	return s.record, nil
}

func (s stubChain) GetAllLands(ctx context.Context) ([]model.LandRecord, error) { return nil, nil }

func (s stubChain) GetLandsByOwner(ctx context.Context, ownerAddress string) ([]model.LandRecord, error) {
	return nil, nil
}

func (s stubChain) RegisterLand(ctx context.Context, signerKeyHex, plotNumber string, landSize *big.Int, gpsCoordinates, deedCID, ownerFullName string) (uint64, error) {
	return 0, nil
}

func (s stubChain) VerifyLand(ctx context.Context, signerKeyHex string, id uint64) error { return nil }

func (s stubChain) RejectLand(ctx context.Context, signerKeyHex string, id uint64, reason string) error {
	return nil
}

func (s stubChain) GenerateProof(ctx context.Context, signerKeyHex string, id uint64) (common.Hash, error) {
	return common.Hash{}, nil
}

func (s stubChain) SubmitProof(ctx context.Context, signerKeyHex string, proofHash common.Hash) error {
	return nil
}

func (s stubChain) WatchProofUsed(ctx context.Context) (<-chan blockchain.ProofUsedEvent, <-chan error, error) {
	return nil, nil, nil
}

func newTestRouter(t *testing.T, handler http.HandlerFunc) http.Handler {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/lands/{landID}", handler)
	require.NotNil(t, router)
	return router
}
