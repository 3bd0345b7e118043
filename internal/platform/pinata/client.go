package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.pinata.cloud"

// Client talks to the Pinata pinning API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	jwt        string
	gateway    string
}

// PinResult is the response body of both pinning endpoints.
type PinResult struct {
	IpfsHash    string `json:"IpfsHash"`
	PinSize     int64  `json:"PinSize"`
	Timestamp   string `json:"Timestamp"`
	IsDuplicate bool   `json:"isDuplicate,omitempty"`
}

// APIError is a non-2xx response from Pinata.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pinata: status %d: %s", e.StatusCode, e.Body)
}

func NewClient(jwt, gateway string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		jwt:        jwt,
		gateway:    strings.TrimRight(gateway, "/"),
	}
}

// SetBaseURL overrides the API endpoint, used in tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// PinJSON pins arbitrary JSON content (NFT metadata) to IPFS.
func (c *Client) PinJSON(ctx context.Context, content interface{}) (*PinResult, error) {
	body, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	return c.do(req)
}

// PinFile streams a file to IPFS via the multipart pinFileToIPFS endpoint.
func (c *Client) PinFile(ctx context.Context, filename string, file io.Reader) (*PinResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pinning/pinFileToIPFS", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	return c.do(req)
}

// GatewayURL returns the public gateway URL for a pinned hash.
func (c *Client) GatewayURL(ipfsHash string) string {
	gateway := c.gateway
	if gateway == "" {
		gateway = "https://gateway.pinata.cloud"
	}
	return fmt.Sprintf("%s/ipfs/%s", gateway, ipfsHash)
}

func (c *Client) do(req *http.Request) (*PinResult, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinata request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result PinResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode pinata response: %w", err)
	}
	return &result, nil
}
