package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"uploadlink/infrastructure/tracking"
)

// Target selects which ingestion endpoint receives a snapshot.
type Target string

const (
	TargetStocks Target = "stocks"
	TargetSales  Target = "sales"
)

// ParseTarget validates a target name from a route parameter.
func ParseTarget(name string) (Target, error) {
	switch Target(name) {
	case TargetStocks:
		return TargetStocks, nil
	case TargetSales:
		return TargetSales, nil
	default:
		return "", fmt.Errorf("unknown upload target %q", name)
	}
}

// Config holds the external endpoint URLs.
type Config struct {
	StocksUploadURL string
	SalesUploadURL  string
	StatusURL       string
}

// Client talks to the external ingestion backend: two upload endpoints and
// one upload-status endpoint. Calls carry no client-side timeout; they rely
// on the transport's own termination.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, httpClient: &http.Client{}}
}

const (
	genericSuccessMessage = "File uploaded successfully!"
	genericFailureMessage = "An error occurred while uploading the file."
)

// Submit posts the file as a single-part multipart body under field "file".
//
// Every path resolves to a concrete UploadResult: a 2xx response yields the
// backend's message (or a generic success), a non-2xx response surfaces the
// body verbatim, and a transport failure yields a generic failure. Submit
// never returns an error to its caller.
func (c *Client) Submit(ctx context.Context, target Target, filename string, file io.Reader) tracking.UploadResult {
	endpoint, err := c.uploadURL(target)
	if err != nil {
		slog.Error("upload submit misconfigured", slog.String("target", string(target)), slog.Any("err", err))
		return tracking.UploadResult{Succeeded: false, Message: genericFailureMessage}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err == nil {
		_, err = io.Copy(part, file)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		slog.Error("upload body encode failed", slog.String("target", string(target)), slog.Any("err", err))
		return tracking.UploadResult{Succeeded: false, Message: genericFailureMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		slog.Error("upload request build failed", slog.String("target", string(target)), slog.Any("err", err))
		return tracking.UploadResult{Succeeded: false, Message: genericFailureMessage}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("upload transport failed", slog.String("target", string(target)), slog.Any("err", err))
		return tracking.UploadResult{Succeeded: false, Message: genericFailureMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return tracking.UploadResult{Succeeded: true, Message: successMessage(resp.Body)}
	}

	errText, _ := io.ReadAll(resp.Body)
	message := strings.TrimSpace(string(errText))
	if message == "" {
		message = resp.Status
	}
	return tracking.UploadResult{Succeeded: false, Message: message}
}

// successMessage pulls the optional JSON message out of a 2xx body.
func successMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return genericSuccessMessage
	}
	if strings.TrimSpace(payload.Message) == "" {
		return genericSuccessMessage
	}
	return payload.Message
}

// FetchStatus retrieves the raw upload-status payload for a period. The
// payload may be wrapped or bare; unwrapping is the synchronizer's concern.
func (c *Client) FetchStatus(ctx context.Context, period tracking.Period) (map[string]any, error) {
	statusURL, err := url.Parse(c.cfg.StatusURL)
	if err != nil {
		return nil, fmt.Errorf("parse status url: %w", err)
	}
	query := statusURL.Query()
	query.Set("year", fmt.Sprintf("%04d", period.Year))
	query.Set("month", fmt.Sprintf("%02d", int(period.Month)))
	statusURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch upload status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status endpoint returned %s", resp.Status)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode status payload: %w", err)
	}
	return payload, nil
}

func (c *Client) uploadURL(target Target) (string, error) {
	switch target {
	case TargetStocks:
		if c.cfg.StocksUploadURL == "" {
			return "", fmt.Errorf("stocks upload url is not configured")
		}
		return c.cfg.StocksUploadURL, nil
	case TargetSales:
		if c.cfg.SalesUploadURL == "" {
			return "", fmt.Errorf("sales upload url is not configured")
		}
		return c.cfg.SalesUploadURL, nil
	default:
		return "", fmt.Errorf("unknown upload target %q", target)
	}
}
