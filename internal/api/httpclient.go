package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"jobdesk/internal/common"
	"jobdesk/internal/logging"
	"jobdesk/internal/models"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
)

// HTTPClient is the net/http implementation of Client.
//
// The bearer token is read from the TokenSource when each request is built,
// not cached at construction, so a token acquired a moment ago is already
// used by the very next call.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API at baseURL. If httpClient is
// nil, http.DefaultClient is used.
func NewHTTPClient(baseURL string, tokens TokenSource, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      httpClient,
		tokens:  tokens,
		log:     log,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string, withAuth bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	if withAuth {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set(authorizationHeader, "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	c.log.Debug(req.Context(), "api request", "method", req.Method, "url", req.URL.Path)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError drains the response body and builds an *APIError carrying the
// server's {"message": ...} payload when one is present.
func (c *HTTPClient) apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &payload)
	return &APIError{Status: resp.StatusCode, Message: payload.Message}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any, withAuth bool) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, body, contentType, withAuth)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Register creates an account. Sent without a bearer token.
func (c *HTTPClient) Register(ctx context.Context, reg models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", reg, &out, false); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// Login authenticates. Sent without a bearer token.
func (c *HTTPClient) Login(ctx context.Context, login models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", login, &out, false); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &out, true); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", patch, &out, true); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// UploadResume uploads a resume file as the "resume" part of a multipart
// request and returns the stored resume reference.
func (c *HTTPClient) UploadResume(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/upload-resume", &buf, mw.FormDataContentType(), true)
	if err != nil {
		return "", err
	}

	var out struct {
		Resume string `json:"resume"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Resume, nil
}

// ListJobs fetches a page of listings. Zero-valued filter fields are omitted
// from the query string.
func (c *HTTPClient) ListJobs(ctx context.Context, filter models.JobFilter) (models.JobPage, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Location != "" {
		q.Set("location", filter.Location)
	}
	if filter.JobType != "" {
		q.Set("jobType", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		q.Set("experienceLevel", filter.ExperienceLevel)
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out models.JobPage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return models.JobPage{}, err
	}
	return out, nil
}

func (c *HTTPClient) Job(ctx context.Context, id string) (models.Job, error) {
	var out models.Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, &out, true); err != nil {
		return models.Job{}, err
	}
	return out, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, input models.JobInput) (models.Job, error) {
	var out models.Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", input, &out, true); err != nil {
		return models.Job{}, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateJob(ctx context.Context, id string, input models.JobInput) (models.Job, error) {
	var out models.Job
	if err := c.doJSON(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), input, &out, true); err != nil {
		return models.Job{}, err
	}
	return out, nil
}

func (c *HTTPClient) DeleteJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil, true)
}

// MyJobs lists the listings posted by the authenticated employer.
func (c *HTTPClient) MyJobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/my-jobs", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Apply(ctx context.Context, app models.ApplicationRequest) (models.Application, error) {
	var out models.Application
	if err := c.doJSON(ctx, http.MethodPost, "/applications", app, &out, true); err != nil {
		return models.Application{}, err
	}
	return out, nil
}

func (c *HTTPClient) MyApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.doJSON(ctx, http.MethodGet, "/applications/my-applications", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// JobApplications lists the applicants for one of the employer's jobs.
func (c *HTTPClient) JobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	var out []models.Application
	if err := c.doJSON(ctx, http.MethodGet, "/applications/job/"+url.PathEscape(jobID), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id string, status string) (models.Application, error) {
	var out models.Application
	req := models.StatusUpdateRequest{Status: status}
	if err := c.doJSON(ctx, http.MethodPut, "/applications/"+url.PathEscape(id)+"/status", req, &out, true); err != nil {
		return models.Application{}, err
	}
	return out, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil, nil, true)
}
