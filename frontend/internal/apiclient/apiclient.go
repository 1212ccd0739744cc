package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
	"github.com/itchan-dev/hackorsnooze/shared/utils"
)

// APIClient struct handles all communication with the stories API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the API rooted at baseURL.
// A zero timeout leaves requests bounded only by their context.
func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// do is the single helper every call goes through. It sends body as JSON
// (when not nil), decodes a success response into out (when not nil) and
// turns everything else into an *errors.APIError.
func (c *APIClient) do(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, op, method, path, body, out)
	observe(op, start, err)
	return err
}

func (c *APIClient) roundTrip(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create API request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return internal_errors.Network(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := internal_errors.FromStatus(op, resp.StatusCode, utils.ErrorMessage(bodyBytes))
		logger.Component("apiclient").Debug("api call failed",
			"op", op,
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// a 2xx with a body we can't read is the server's fault
		return &internal_errors.APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    "cannot decode response",
			Kind:       internal_errors.ErrServer,
			Err:        err,
		}
	}
	return nil
}
