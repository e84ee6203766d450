package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/focusly/todo/internal/debug"
)

const (
	// BaseURL is the production Asana REST endpoint.
	BaseURL = "https://app.asana.com/api/1.0/"

	// RefreshCooldown is the minimum time between reauthentication
	// attempts. A 401 inside the cooldown fails immediately instead of
	// hammering the token endpoint.
	RefreshCooldown = 5 * time.Minute

	connectTimeout = 5 * time.Second
	requestTimeout = 10 * time.Second
)

// Client is an authenticated Asana API client. It is not safe for
// concurrent use while a reauthentication is in flight.
type Client struct {
	baseURL            *url.URL
	creds              Credentials
	httpClient         *http.Client
	lastRefreshAttempt time.Time

	// AuthorizeFunc runs the full interactive authorization flow. It is
	// invoked when an OAuth2 credential without a refresh token expires.
	AuthorizeFunc func(ctx context.Context) (Credentials, error)
}

// NewClient builds a client against the production API.
func NewClient(creds Credentials) *Client {
	c, err := NewClientAt(BaseURL, creds)
	if err != nil {
		// BaseURL is a constant; this cannot happen.
		panic(err)
	}
	return c
}

// NewClientAt builds a client against an explicit base URL. The URL must
// end with a slash so relative paths resolve under it.
func NewClientAt(baseURL string, creds Credentials) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	return &Client{
		baseURL:       u,
		creds:         creds,
		httpClient:    newHTTPClient(),
		AuthorizeFunc: ExecuteAuthorizationFlow,
	}, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}
}

// Credentials returns the client's current credentials. Callers persist
// these after operations that may have reauthenticated.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// Fetch retrieves a resource and decodes its data envelope. On a 401 the
// client reauthenticates once (subject to the refresh cooldown) and
// retries the request with the new credentials.
func Fetch[P, R any](ctx context.Context, c *Client, res Resource[P, R], param P) (R, error) {
	var zero R

	u := c.baseURL.JoinPath(res.Segments(param)...)
	query := url.Values{}
	if res.Params != nil {
		query = res.Params(param)
	}
	query.Set("opt_fields", strings.Join(res.Fields, ","))
	u.RawQuery = query.Encode()

	body, err := c.get(ctx, u)
	if err != nil {
		if !isUnauthorized(err) {
			return zero, err
		}
		debug.Logf("got 401 from %s, attempting reauthentication", u.Path)
		if rerr := c.Reauthenticate(ctx); rerr != nil {
			return zero, rerr
		}
		body, err = c.get(ctx, u)
		if err != nil {
			return zero, err
		}
	}

	return DecodeData[R](body)
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

func (c *Client) get(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// Mutate sends a write request. The body is wrapped in the API's data
// envelope and the raw response body is returned. Mutations never
// reauthenticate automatically: an expired token surfaces as an
// *APIError with status 401.
func (c *Client) Mutate(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	envelope, err := json.Marshal(map[string]interface{}{"data": body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	u := c.baseURL.JoinPath(strings.Split(path, "/")...)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.creds.Token())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// DecodeData unwraps the {"data": ...} envelope every Asana response
// carries and decodes the payload into R.
func DecodeData[R any](raw []byte) (R, error) {
	var envelope struct {
		Data R `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		var zero R
		return zero, fmt.Errorf("failed to parse response: %w", err)
	}
	return envelope.Data, nil
}

// Reauthenticate renews the client's credentials. The attempt timestamp
// is recorded up front so a failed renewal still starts the cooldown.
func (c *Client) Reauthenticate(ctx context.Context) error {
	if since := time.Since(c.lastRefreshAttempt); since < RefreshCooldown {
		return &UnableToRefreshError{
			Reason: fmt.Sprintf("last attempt was %s ago, cooldown is %s", since.Round(time.Second), RefreshCooldown),
		}
	}
	c.lastRefreshAttempt = time.Now()

	var (
		fresh Credentials
		err   error
	)
	switch {
	case c.creds.OAuth2 != nil && c.creds.OAuth2.RefreshToken != "":
		debug.Logf("refreshing access token")
		fresh, err = RefreshAuthorization(ctx, c.creds.OAuth2.RefreshToken)
	case c.creds.OAuth2 != nil:
		debug.Logf("no refresh token, restarting authorization flow")
		fresh, err = c.AuthorizeFunc(ctx)
	default:
		return &UnableToRefreshError{Reason: "personal access tokens cannot be refreshed"}
	}
	if err != nil {
		return fmt.Errorf("reauthentication failed: %w", err)
	}

	c.creds = fresh
	c.httpClient = newHTTPClient()
	return nil
}
