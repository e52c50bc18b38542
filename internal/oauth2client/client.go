// Package oauth2client pide tokens a un authorization server externo
// con el grant de password (ROPC). No participa del sign-in local.
package oauth2client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// GrantType es el valor que espera el authorization server.
const GrantType = "authorization_password"

var ErrMissingEndpoint = errors.New("oauth2client: token endpoint is required")

// Client pide tokens a TokenEndpoint con credenciales de cliente Basic.
type Client struct {
	TokenEndpoint string
	ClientID      string
	ClientSecret  string

	http *http.Client
}

type Option func(*Client)

// WithHTTPClient reemplaza el http.Client (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(endpoint, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		TokenEndpoint: endpoint,
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		http:          &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// TokenResponse es la respuesta del token endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	IDToken      string `json:"id_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    uint32 `json:"expires_in"`
}

// RequestToken postea username/password como form.
func (c *Client) RequestToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	if c.TokenEndpoint == "" {
		return nil, ErrMissingEndpoint
	}
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", GrantType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("oauth2client: token endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("oauth2client: decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, errors.New("oauth2client: no access_token in response")
	}

	logger.From(ctx).Info("oauth2 token issued",
		logger.Component("oauth2client"),
		logger.String("token_type", tr.TokenType),
		logger.Int64("expires_in", int64(tr.ExpiresIn)),
	)
	return &tr, nil
}
