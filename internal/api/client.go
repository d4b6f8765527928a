// Package api implements the HTTP client for the FarmLook analysis
// backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farmlook/farmlook/internal/model"
)

// Client talks to the analysis backend. Calls are fire-and-forget from
// the caller's point of view: no retries, and no client-side timeout
// beyond what the context carries.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient builds a client for the given base URL. A nil logger
// disables diagnostics.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
	}
}

type loginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Session struct {
		AccessToken string `json:"access_token"`
	} `json:"session"`
	User struct {
		ID           string `json:"id"`
		UserMetadata struct {
			Name  string `json:"name"`
			State string `json:"state"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and a user snapshot.
func (c *Client) Login(ctx context.Context, phone, password string) (string, model.User, error) {
	body := map[string]string{"phone": phone, "password": password}
	var out loginResponse
	status, err := c.postJSON(ctx, "/auth/login", "", body, &out)
	if err != nil {
		return "", model.User{}, err
	}
	if err := checkEnvelope(status, out.Success, out.Error); err != nil {
		return "", model.User{}, err
	}
	user := model.User{
		ID:    out.User.ID,
		Name:  out.User.UserMetadata.Name,
		State: out.User.UserMetadata.State,
	}
	return out.Session.AccessToken, user, nil
}

// SignupRequest carries the signup form fields. Validation happens in
// the session layer before this call is made.
type SignupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	State    string `json:"state"`
}

// Signup registers a new account. Credentials are not persisted; the
// caller redirects to login afterwards.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	status, err := c.postJSON(ctx, "/auth/signup", "", req, &out)
	if err != nil {
		return err
	}
	return checkEnvelope(status, out.Success, out.Error)
}

// SaveReportRequest bundles a named report for permanent storage.
type SaveReportRequest struct {
	Name     string             `json:"name"`
	Crop     string             `json:"crop"`
	ImageURL string             `json:"imageUrl"`
	Result   model.ReportResult `json:"result"`
}

// SaveReport persists a report under the caller's account.
func (c *Client) SaveReport(ctx context.Context, token string, req SaveReportRequest) error {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	status, err := c.postJSON(ctx, "/analysis/save", token, req, &out)
	if err != nil {
		return err
	}
	return checkEnvelope(status, out.Success, out.Error)
}

// ListReports fetches all saved reports for the caller's account.
func (c *Client) ListReports(ctx context.Context, token string) ([]model.SavedReport, error) {
	var out struct {
		Success bool                `json:"success"`
		Error   string              `json:"error"`
		Reports []model.SavedReport `json:"reports"`
	}
	status, err := c.getJSON(ctx, "/analysis/reports", token, &out)
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(status, out.Success, out.Error); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

// GetReport fetches one saved report by id.
func (c *Client) GetReport(ctx context.Context, token, id string) (model.SavedReport, error) {
	var out struct {
		Success bool              `json:"success"`
		Error   string            `json:"error"`
		Report  model.SavedReport `json:"report"`
	}
	status, err := c.getJSON(ctx, "/analysis/report/"+id, token, &out)
	if err != nil {
		return model.SavedReport{}, err
	}
	if err := checkEnvelope(status, out.Success, out.Error); err != nil {
		return model.SavedReport{}, err
	}
	return out.Report, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out any) (int, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, token, bytes.NewReader(body), "application/json", out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) (int, error) {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

// do issues one request and decodes the JSON response body into out.
// It returns the HTTP status so callers can apply the envelope check;
// transport failures and undecodable bodies become typed errors here.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) (int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	c.log.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url))

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug("api transport error",
			zap.String("request_id", requestID),
			zap.Error(err))
		return 0, &Error{Kind: KindTransport, err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &Error{Kind: KindTransport, err: err}
	}
	c.log.Debug("api response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp.StatusCode, &Error{Kind: KindApplication, Status: resp.StatusCode, err: err}
		}
		return resp.StatusCode, &Error{Kind: KindDecode, Status: resp.StatusCode, err: err}
	}
	return resp.StatusCode, nil
}

// checkEnvelope applies the backend's response contract: a call failed
// when the HTTP status is non-2xx or the success flag is false.
func checkEnvelope(status int, success bool, message string) error {
	if status >= 200 && status < 300 && success {
		return nil
	}
	return &Error{Kind: KindApplication, Status: status, Message: message}
}
