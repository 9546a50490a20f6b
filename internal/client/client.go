// Package client issues the upload and download requests exercised by the scenario.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"audiocheck/internal/fixture"
)

const (
	// DefaultTimeout matches the request timeout of common load-test runners.
	DefaultTimeout = 60 * time.Second

	audioField       = "audio"
	audioContentType = "audio/wav"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Config configures an AudioClient.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// AudioClient talks to the audio storage API. It never retries.
type AudioClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an AudioClient. A nil HTTPClient gets one with cfg.Timeout.
func New(cfg Config) *AudioClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &AudioClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *AudioClient) BaseURL() string {
	return c.baseURL
}

// UploadURL returns the upload endpoint for a (user, phrase) pair.
func (c *AudioClient) UploadURL(userID, phraseID string) string {
	return fmt.Sprintf("%s/audio/user/%s/phrase/%s", c.baseURL, url.PathEscape(userID), url.PathEscape(phraseID))
}

// DownloadURL returns the download endpoint for a pair in the given format.
func (c *AudioClient) DownloadURL(userID, phraseID, format string) string {
	return c.UploadURL(userID, phraseID) + "/" + url.PathEscape(format)
}

// UploadAudio posts the fixture as a multipart "audio" file part.
func (c *AudioClient) UploadAudio(ctx context.Context, userID, phraseID string, audio fixture.AudioFixture) *Response {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		audioField, quoteEscaper.Replace(audio.Filename())))
	header.Set("Content-Type", audioContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return failed(fmt.Errorf("create multipart part: %w", err))
	}
	if _, err := part.Write(audio.Data); err != nil {
		return failed(fmt.Errorf("write multipart part: %w", err))
	}
	if err := writer.Close(); err != nil {
		return failed(fmt.Errorf("close multipart writer: %w", err))
	}

	return c.do(ctx, http.MethodPost, c.UploadURL(userID, phraseID), body, writer.FormDataContentType())
}

// UploadWithoutFile posts an empty form to the upload endpoint.
func (c *AudioClient) UploadWithoutFile(ctx context.Context, userID, phraseID string) *Response {
	return c.do(ctx, http.MethodPost, c.UploadURL(userID, phraseID), http.NoBody, "application/x-www-form-urlencoded")
}

// DownloadAudio fetches the pair's audio converted to format.
func (c *AudioClient) DownloadAudio(ctx context.Context, userID, phraseID, format string) *Response {
	return c.do(ctx, http.MethodGet, c.DownloadURL(userID, phraseID, format), nil, "")
}

func (c *AudioClient) do(ctx context.Context, method, target string, body io.Reader, contentType string) *Response {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return failed(fmt.Errorf("build request: %w", err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Response{Err: err, Duration: time.Since(start)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	return &Response{
		Status:   resp.StatusCode,
		Header:   resp.Header,
		Body:     data,
		Err:      err,
		Duration: time.Since(start),
	}
}

func failed(err error) *Response {
	return &Response{Err: err}
}
