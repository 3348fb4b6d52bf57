// Package adminclient talks to the portal's admin HTTP API.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"scholarportal/internal/adminform"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

// DefaultTimeout is the HTTP timeout used by New.
const DefaultTimeout = 30 * time.Second

// Client is an authenticated admin API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for baseURL that sends token as a bearer credential.
func New(baseURL, token string) *Client {
	return NewWithHTTPClient(baseURL, token, &http.Client{Timeout: DefaultTimeout})
}

// NewWithHTTPClient creates a client with a caller-supplied *http.Client.
func NewWithHTTPClient(baseURL, token string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// ListCollections returns every collection ordered by name.
func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var out []models.Collection
	err := c.do(ctx, http.MethodGet, "/api/admin/collections", nil, &out)
	return out, err
}

// GetCollection fetches one collection.
func (c *Client) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	var out models.Collection
	if err := c.do(ctx, http.MethodGet, "/api/admin/collections/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCollection creates a collection.
func (c *Client) CreateCollection(ctx context.Context, req *services.CreateCollectionRequest) (*models.Collection, error) {
	var out models.Collection
	if err := c.do(ctx, http.MethodPost, "/api/admin/collections", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCollection sends a partial update.
func (c *Client) UpdateCollection(ctx context.Context, id string, patch adminform.Patch) (*models.Collection, error) {
	var out models.Collection
	if err := c.do(ctx, http.MethodPatch, "/api/admin/collections/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCollection removes a collection; member resources are unlinked server-side.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/collections/"+url.PathEscape(id), nil, nil)
}

// ListResources returns every resource, newest first.
func (c *Client) ListResources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	err := c.do(ctx, http.MethodGet, "/api/admin/resources", nil, &out)
	return out, err
}

// GetResource fetches one resource.
func (c *Client) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	var out models.Resource
	if err := c.do(ctx, http.MethodGet, "/api/admin/resources/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateResource creates a resource.
func (c *Client) CreateResource(ctx context.Context, req *services.CreateResourceRequest) (*models.Resource, error) {
	var out models.Resource
	if err := c.do(ctx, http.MethodPost, "/api/admin/resources", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResource sends a partial update.
func (c *Client) UpdateResource(ctx context.Context, id string, patch adminform.Patch) (*models.Resource, error) {
	var out models.Resource
	if err := c.do(ctx, http.MethodPatch, "/api/admin/resources/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteResource removes a resource.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/resources/"+url.PathEscape(id), nil, nil)
}

// ListQuestions returns questions newest first. An empty status lists all.
func (c *Client) ListQuestions(ctx context.Context, status string) ([]models.Question, error) {
	path := "/api/admin/questions"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []models.Question
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// AnswerQuestion publishes a video answer to a pending question.
func (c *Client) AnswerQuestion(ctx context.Context, id string, req *services.AnswerQuestionRequest) (*models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodPatch, "/api/admin/questions/"+url.PathEscape(id)+"/answer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectQuestion rejects a pending question.
func (c *Client) RejectQuestion(ctx context.Context, id string, req *services.RejectQuestionRequest) (*models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodPatch, "/api/admin/questions/"+url.PathEscape(id)+"/reject", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSettings reads the public site settings.
func (c *Client) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var out models.SiteSettings
	if err := c.do(ctx, http.MethodGet, "/api/site-settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings merges u into the stored settings.
func (c *Client) UpdateSettings(ctx context.Context, u *models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	var out models.SiteSettings
	if err := c.do(ctx, http.MethodPut, "/api/admin/site-settings", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload sends a file to object storage and returns its public URL.
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return "", fmt.Errorf("failed to write folder field: %w", err)
		}
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/admin/uploads", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return decodeProblem(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
