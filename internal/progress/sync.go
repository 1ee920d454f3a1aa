package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultSyncTimeout = 10 * time.Second

// Profile is the server-side user profile as returned by the API.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
	LastActive string `json:"lastActive"`
}

// Client mirrors a session's store to the backend. Fetches replace the
// local record wholesale on success and leave it untouched on failure;
// pushes are fire-and-forget, reported but never rolled back.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultSyncTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type profileResponse struct {
	Success  bool    `json:"success"`
	Profile  Profile `json:"profile"`
	Progress Record  `json:"progress"`
	Error    string  `json:"error"`
}

type progressResponse struct {
	Success  bool   `json:"success"`
	Progress Record `json:"progress"`
	Error    string `json:"error"`
}

// FetchRemote pulls the server's record and replaces the session's
// local store with it. On any failure the local record stays as is.
func (c *Client) FetchRemote(ctx context.Context, s *Session) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/profile", nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)

	var out profileResponse
	if err := c.do(req, &out); err != nil {
		c.logger.Warn("progress fetch failed, keeping local record", zap.Error(err))
		return Profile{}, err
	}
	s.Store.Replace(out.Progress)
	return out.Profile, nil
}

// PushCompletion reports a finished lesson to the server. The local
// store is already updated; a failed push is only logged and returned.
func (c *Client) PushCompletion(ctx context.Context, s *Session, lessonKey string, moduleIdx, score int) error {
	body := map[string]interface{}{
		"lessonId":  lessonKey,
		"moduleId":  moduleIdx,
		"quizScore": score,
	}
	if err := c.post(ctx, s, "/api/progress", body, &progressResponse{}); err != nil {
		c.logger.Warn("completion push failed",
			zap.String("lesson", lessonKey),
			zap.Error(err))
		return err
	}
	return nil
}

// PushPosition reports the learner's current position.
func (c *Client) PushPosition(ctx context.Context, s *Session, moduleIdx, lessonIdx int) error {
	body := map[string]interface{}{
		"moduleId": moduleIdx,
		"lessonId": lessonIdx,
	}
	if err := c.post(ctx, s, "/api/position", body, &progressResponse{}); err != nil {
		c.logger.Warn("position push failed", zap.Error(err))
		return err
	}
	return nil
}

func (c *Client) post(ctx context.Context, s *Session, path string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&fail)
		if fail.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, fail.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
