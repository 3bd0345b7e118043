package pinata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakePinata(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-jwt", "")
	client.SetBaseURL(server.URL)
	return client
}

func TestPinJSON(t *testing.T) {
	client := newFakePinata(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Gold Monthly Airdrop", body["name"])

		_ = json.NewEncoder(w).Encode(PinResult{IpfsHash: "QmTestHash", PinSize: 128})
	})

	result, err := client.PinJSON(context.Background(), map[string]interface{}{"name": "Gold Monthly Airdrop"})
	require.NoError(t, err)
	assert.Equal(t, "QmTestHash", result.IpfsHash)
	assert.EqualValues(t, 128, result.PinSize)
}

func TestPinFile(t *testing.T) {
	client := newFakePinata(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ape.png", header.Filename)

		_ = json.NewEncoder(w).Encode(PinResult{IpfsHash: "QmFileHash"})
	})

	result, err := client.PinFile(context.Background(), "ape.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "QmFileHash", result.IpfsHash)
}

func TestAPIErrorSurfacesStatusAndBody(t *testing.T) {
	client := newFakePinata(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid JWT"}`))
	})

	_, err := client.PinJSON(context.Background(), map[string]string{"name": "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid JWT")
}

func TestGatewayURL(t *testing.T) {
	assert.Equal(t,
		"https://gateway.pinata.cloud/ipfs/QmHash",
		NewClient("jwt", "").GatewayURL("QmHash"))

	assert.Equal(t,
		"https://my-gateway.example.com/ipfs/QmHash",
		NewClient("jwt", "https://my-gateway.example.com/").GatewayURL("QmHash"))
}
