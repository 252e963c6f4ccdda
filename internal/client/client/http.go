package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobly/internal/client/models"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient implements Client over the Jobly REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for baseURL (e.g. "http://localhost:3001").
// timeout bounds each request; zero means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Request sends one API call and decodes a 2xx body into out (which may be nil).
// payload becomes query parameters for GET and a JSON body otherwise.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, payload any, out any) error {
	method = strings.ToUpper(method)
	endpoint = strings.TrimLeft(endpoint, "/")
	target := c.baseURL + "/" + endpoint

	var body io.Reader
	if method == http.MethodGet {
		q, err := toQuery(payload)
		if err != nil {
			return fmt.Errorf("encode %s query: %w", endpoint, err)
		}
		if len(q) > 0 {
			target += "?" + q.Encode()
		}
	} else if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.Token())
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With("method", method, "endpoint", endpoint, "request_id", requestID)
	log.Debug(ctx, "API call")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "API transport error", "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "API response read error", "error", err)
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, data)
		log.Warn(ctx, "API error", "status", resp.StatusCode, "messages", apiErr.Messages)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func transportError(err error) *APIError {
	msg := ErrUnavailable.Error()
	switch {
	case errors.Is(err, context.Canceled):
		msg = "request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		msg = "request timed out"
	}
	return &APIError{Messages: []string{msg}, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
}

type errorEnvelope struct {
	Error struct {
		Message json.RawMessage `json:"message"`
		Status  int             `json:"status"`
	} `json:"error"`
}

// decodeError turns a non-2xx body into an APIError. The message may be a
// list (kept as is) or a single string (wrapped); anything else falls back
// to the HTTP status text.
func decodeError(status int, body []byte) *APIError {
	var env errorEnvelope
	var messages []string

	if err := json.Unmarshal(body, &env); err == nil && len(env.Error.Message) > 0 {
		var list []string
		var single string
		switch {
		case json.Unmarshal(env.Error.Message, &list) == nil:
			messages = list
		case json.Unmarshal(env.Error.Message, &single) == nil && single != "":
			messages = []string{single}
		}
	}

	if len(messages) == 0 {
		text := http.StatusText(status)
		if text == "" {
			text = ErrRequestFailed.Error()
		}
		messages = []string{text}
	}
	return &APIError{Status: status, Messages: messages}
}

// toQuery flattens a JSON-object payload into query parameters. Nil fields
// are skipped and arrays become repeated keys.
func toQuery(payload any) (url.Values, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return p, nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, errors.New("query payload must be a JSON object")
	}

	q := url.Values{}
	for k, v := range fields {
		if vs, ok := v.([]any); ok {
			for _, item := range vs {
				q.Add(k, queryValue(item))
			}
			continue
		}
		if v != nil {
			q.Set(k, queryValue(v))
		}
	}
	return q, nil
}

func queryValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.Request(ctx, http.MethodPost, "auth/token", creds, &res); err != nil {
		return "", err
	}
	return res.Token, requireToken(res.Token)
}

func (c *HTTPClient) Register(ctx context.Context, data models.SignupData) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.Request(ctx, http.MethodPost, "auth/register", data, &res); err != nil {
		return "", err
	}
	return res.Token, requireToken(res.Token)
}

func requireToken(token string) error {
	if token == "" {
		return &APIError{Status: http.StatusOK, Messages: []string{"no token in response"}, Err: ErrRequestFailed}
	}
	return nil
}

func (c *HTTPClient) GetUser(ctx context.Context, username string) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.Request(ctx, http.MethodGet, "users/"+url.PathEscape(username), nil, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, &APIError{Status: http.StatusOK, Messages: []string{"no user in response"}, Err: ErrRequestFailed}
	}
	return res.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, username string, patch models.ProfilePatch) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.Request(ctx, http.MethodPatch, "users/"+url.PathEscape(username), patch, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, &APIError{Status: http.StatusOK, Messages: []string{"no user in response"}, Err: ErrRequestFailed}
	}
	return res.User, nil
}

func (c *HTTPClient) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	var res struct {
		Companies []models.Company `json:"companies"`
	}
	if err := c.Request(ctx, http.MethodGet, "companies", filter, &res); err != nil {
		return nil, err
	}
	return res.Companies, nil
}

func (c *HTTPClient) GetCompany(ctx context.Context, handle string) (*models.Company, error) {
	var res struct {
		Company *models.Company `json:"company"`
	}
	if err := c.Request(ctx, http.MethodGet, "companies/"+url.PathEscape(handle), nil, &res); err != nil {
		return nil, err
	}
	if res.Company == nil {
		return nil, &APIError{Status: http.StatusNotFound, Messages: []string{"No company: " + handle}}
	}
	return res.Company, nil
}

func (c *HTTPClient) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	var res struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := c.Request(ctx, http.MethodGet, "jobs", filter, &res); err != nil {
		return nil, err
	}
	return res.Jobs, nil
}

func (c *HTTPClient) GetJob(ctx context.Context, id int) (*models.Job, error) {
	var res struct {
		Job *models.Job `json:"job"`
	}
	if err := c.Request(ctx, http.MethodGet, "jobs/"+strconv.Itoa(id), nil, &res); err != nil {
		return nil, err
	}
	if res.Job == nil {
		return nil, &APIError{Status: http.StatusNotFound, Messages: []string{fmt.Sprintf("No job: %d", id)}}
	}
	return res.Job, nil
}

// ApplyToJob records an application and returns the job id echoed by the backend.
func (c *HTTPClient) ApplyToJob(ctx context.Context, username string, jobID int) (int, error) {
	var res struct {
		Applied int `json:"applied"`
	}
	endpoint := fmt.Sprintf("users/%s/jobs/%d", url.PathEscape(username), jobID)
	if err := c.Request(ctx, http.MethodPost, endpoint, nil, &res); err != nil {
		return 0, err
	}
	return res.Applied, nil
}
