package pinata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"land-registry/internal/storage/pinata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(10e6))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "deed.pdf.txt", header.Filename)

		w.Write([]byte(`{"IpfsHash":"QmTestCid","PinSize":42}`))
	}))
	defer server.Close()

	client := pinata.NewClient(zap.NewNop(), server.URL, server.URL, "test-jwt")
	cid, err := client.UploadFile(context.Background(), "deed.pdf.txt", []byte("ciphertext"))
	require.NoError(t, err)
	assert.Equal(t, "QmTestCid", cid)
}

func TestUploadFileNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad jwt"}`))
	}))
	defer server.Close()

	client := pinata.NewClient(zap.NewNop(), server.URL, server.URL, "wrong")
	_, err := client.UploadFile(context.Background(), "deed", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestUploadFileMissingCid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := pinata.NewClient(zap.NewNop(), server.URL, server.URL, "test-jwt")
	_, err := client.UploadFile(context.Background(), "deed", []byte("x"))
	assert.Error(t, err)
}

func TestGatewayURL(t *testing.T) {
	client := pinata.NewClient(zap.NewNop(), "https://api.pinata.cloud", "https://example.mypinata.cloud/", "jwt")
	assert.Equal(t, "https://example.mypinata.cloud/ipfs/QmTestCid", client.GatewayURL("QmTestCid"))
}

func TestFetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipfs/QmTestCid", r.URL.Path)
		w.Write([]byte("deadbeef"))
	}))
	defer server.Close()

	client := pinata.NewClient(zap.NewNop(), server.URL, server.URL, "jwt")
	text, err := client.FetchText(context.Background(), "QmTestCid")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", text)
}

func TestFetchTextNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := pinata.NewClient(zap.NewNop(), server.URL, server.URL, "jwt")
	_, err := client.FetchText(context.Background(), "QmMissing")
	assert.Error(t, err)
}
