// Package pinata talks to the Pinata pinning service: it pins encrypted
// deed blobs and fetches them back through the gateway. Content addressed
// storage is the only durable home of the ciphertext; the contract keeps
// just the CID.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type Client struct {
	logger     *zap.Logger
	apiURL     string
	gatewayURL string
	jwt        string
	httpClient *http.Client
}

func NewClient(logger *zap.Logger, apiURL, gatewayURL, jwt string) *Client {
	return &Client{
		logger:     logger,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		gatewayURL: strings.TrimSuffix(gatewayURL, "/"),
		jwt:        jwt,
		httpClient: http.DefaultClient,
	}
}

// UploadFile pins the given content as a file and returns its CID.
// A non-2xx response aborts the whole submission pipeline; the caller
// resubmits manually, there is no retry here.
func (c *Client) UploadFile(ctx context.Context, fileName string, content []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", errors.New("failed to build the upload form: " + err.Error())
	}
	if _, err := part.Write(content); err != nil {
		return "", errors.New("failed to write the file content: " + err.Error())
	}
	if err := writer.Close(); err != nil {
		return "", errors.New("failed to finalize the upload form: " + err.Error())
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/pinning/pinFileToIPFS", body)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+c.jwt)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", errors.New("upload request failed: " + err.Error())
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", errors.New("reading the upload response failed: " + err.Error())
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", errors.New("upload failed, status: " + response.Status + "; body: " + string(responseBody))
	}

	var unmarshalled struct {
		IpfsHash string `json:"IpfsHash"`
	}
	if err := json.Unmarshal(responseBody, &unmarshalled); err != nil {
		return "", errors.New("failed to unmarshal the upload response: " + err.Error())
	}
	if unmarshalled.IpfsHash == "" {
		return "", errors.New("upload response carries no CID")
	}

	c.logger.Info("file pinned", zap.String("fileName", fileName), zap.String("cid", unmarshalled.IpfsHash))

	return unmarshalled.IpfsHash, nil
}

// GatewayURL converts a CID to a fetchable URL on the configured gateway.
func (c *Client) GatewayURL(cid string) string {
	return c.gatewayURL + "/ipfs/" + cid
}

// FetchText downloads the pinned blob and decodes it as UTF-8 text; the
// ciphertext is stored as a string, not raw binary.
func (c *Client) FetchText(ctx context.Context, cid string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GatewayURL(cid), nil)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", errors.New("gateway fetch failed: " + err.Error())
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", errors.New("reading the gateway response failed: " + err.Error())
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", errors.New("gateway fetch failed, status: " + response.Status)
	}

	return string(responseBody), nil
}
