package payoutapi

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"paydash/session"

	"github.com/go-resty/resty/v2"
)

// Client wraps the remote payout backend. All calls attach the session's
// bearer and refresh tokens at request setup, and every failure is
// normalized into an APIError before it reaches a caller.
type Client struct {
	http *resty.Client
	sess *session.Session

	// onAuthExpired fires after the session has been cleared on a 401,
	// so the caller can force navigation back to login.
	onAuthExpired func()
}

// NewClient builds a client against baseURL (scheme+host), mounting the
// backend's /api/<version> prefix.
func NewClient(baseURL, version string, timeoutSeconds int, sess *session.Session) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api/"+version).
		SetTimeout(time.Duration(timeoutSeconds)*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, sess: sess}
}

// OnAuthExpired registers the forced-logout side effect.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// Session returns the session context this client reads tokens from.
func (c *Client) Session() *session.Session {
	return c.sess
}

// Get issues a GET request.
func (c *Client) Get(path string, params, headers map[string]string) (*Envelope, error) {
	return c.do("GET", path, nil, params, headers, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(path string, body interface{}, params, headers map[string]string) (*Envelope, error) {
	return c.do("POST", path, body, params, headers, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(path string, body interface{}, params, headers map[string]string) (*Envelope, error) {
	return c.do("PUT", path, body, params, headers, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(path string, body interface{}, params, headers map[string]string) (*Envelope, error) {
	return c.do("DELETE", path, body, params, headers, nil)
}

// PostMultipart uploads a file plus accompanying form fields.
func (c *Client) PostMultipart(path, fileField, fileName string, file io.Reader, fields, params map[string]string) (*Envelope, error) {
	return c.do("POST", path, nil, params, nil, func(req *resty.Request) {
		req.SetFileReader(fileField, fileName, file)
		if len(fields) > 0 {
			req.SetFormData(fields)
		}
	})
}

func (c *Client) do(method, path string, body interface{}, params, headers map[string]string, configure func(*resty.Request)) (*Envelope, error) {
	req := c.http.R()

	// Tokens are read from the session per call, not cached on the client.
	if token := c.sess.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if refresh := c.sess.RefreshToken(); refresh != "" {
		req.SetHeader("refreshToken", refresh)
	}

	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &APIError{Kind: KindUnknown, Message: genericRetryMessage}
	}
	return c.normalize(resp)
}

// normalize maps a raw backend response onto the error taxonomy. This is
// the only place HTTP status codes are interpreted.
func (c *Client) normalize(resp *resty.Response) (*Envelope, error) {
	body := resp.Body()

	var env Envelope
	envOK := json.Unmarshal(body, &env) == nil

	status := resp.StatusCode()
	if status == 401 || (envOK && env.StatusCode() == 401) {
		c.expireAuth()
		return nil, &APIError{Kind: KindAuthExpired, StatusCode: 401, Message: "Please log in again"}
	}

	switch status {
	case 502, 503, 504, 505:
		return nil, &APIError{Kind: KindServiceUnavailable, StatusCode: status, Message: "Service unavailable"}
	case 500:
		return nil, &APIError{Kind: KindInternalServerError, StatusCode: 500, Message: "Something Went Wrong"}
	}

	if resp.IsError() || !envOK {
		return nil, &APIError{Kind: KindUnknown, StatusCode: status, Message: extractMessage(body)}
	}

	if !env.Response {
		message := env.Message
		if message == "" {
			message = genericRetryMessage
		}
		return nil, &APIError{Kind: KindApplicationError, StatusCode: status, Message: message}
	}

	return &env, nil
}

// expireAuth clears all persisted client state and notifies the forced
// logout hook. The session clear happens for every 401 no matter which
// operation triggered it.
func (c *Client) expireAuth() {
	_ = c.sess.Clear()
	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}
}
