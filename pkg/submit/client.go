// Package submit delivers completed form definitions to the collection
// endpoint the generated code samples target.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"formedit/internal/payload"
)

// Client submits form payloads to a collection server.
type Client struct {
	baseURL string
	client  *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// NewWithTimeout constructs a client for the given base URL with a request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Receipt is the server's acknowledgement of a submission.
type Receipt struct {
	ID         string `json:"id"`
	ReceivedAt string `json:"receivedAt"`
}

type submission struct {
	Form        []payload.Entry `json:"form"`
	SubmittedAt string          `json:"submittedAt"`
}

// Submit posts the payload document with a submission timestamp.
func (c *Client) Submit(ctx context.Context, doc payload.Document, submittedAt time.Time) (Receipt, error) {
	body, err := json.Marshal(submission{
		Form:        doc.Form,
		SubmittedAt: submittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Receipt{}, err
	}
	data, status, err := c.post(ctx, "", body)
	if err != nil {
		return Receipt{}, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return Receipt{}, decodeHTTPError(status, data)
	}
	var receipt Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return fmt.Errorf("http %d: %s", status, resp.Error)
	}
	return fmt.Errorf("http %d", status)
}
