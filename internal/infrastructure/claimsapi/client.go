// Package claimsapi is the HTTP client for the upstream claims/products
// backend. Every request carries the stored bearer token when one exists;
// an authorization failure from upstream invalidates the stored credentials
// as a side effect before the error reaches the caller.
package claimsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/claimsdesk/backend/internal/domain/claims"
	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/claimsdesk/backend/internal/infrastructure/credentials"
)

const (
	loginPath     = "/auth/login"
	claimsPath    = "/claims"
	claimByIDPath = "/claims/%s"
)

// Client issues JSON requests to the claims/products backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credentials.Store
	logger     *zap.Logger
}

// NewClient creates a claims API client
func NewClient(baseURL string, store credentials.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		store:      store,
		logger:     logger.Named("claimsapi"),
	}
}

// LoginResult is what a successful login persists and returns
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         json.RawMessage
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	User         json.RawMessage `json:"user"`
}

// Login authenticates against the claims API. The response may carry the
// token under accessToken or the older token field; a response with neither
// is a validation failure and nothing is stored.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("claimsapi: marshal login request: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, loginPath, body)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("claimsapi: parse login response: %w", err)
	}

	accessToken := resp.AccessToken
	if accessToken == "" {
		accessToken = resp.Token
	}
	if accessToken == "" {
		return nil, fmt.Errorf("%w: no access token in login response", shared.ErrValidation)
	}

	if err := c.store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken, accessToken); err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyRefreshToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	user := resp.User
	if user == nil {
		user = json.RawMessage("null")
	}
	if err := c.store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAuthUser, string(user)); err != nil {
		return nil, err
	}

	c.logger.Info("Login succeeded", zap.String("username", username))

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: resp.RefreshToken,
		User:         user,
	}, nil
}

// GetClaim fetches a single claim by id
func (c *Client) GetClaim(ctx context.Context, id string) (*claims.Claim, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf(claimByIDPath, id), nil)
	if err != nil {
		return nil, err
	}

	var claim claims.Claim
	if err := json.Unmarshal(respBody, &claim); err != nil {
		return nil, fmt.Errorf("claimsapi: parse claim: %w", err)
	}
	return &claim, nil
}

// ListClaims fetches the claims list with its forward pagination cursor.
// The upstream route does not paginate yet, so the cursor is always nil.
func (c *Client) ListClaims(ctx context.Context) (*claims.ClaimList, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, claimsPath, nil)
	if err != nil {
		return nil, err
	}

	var list claims.ClaimList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("claimsapi: parse claim list: %w", err)
	}
	return &list, nil
}

// Logout clears the stored claims-API credentials
func (c *Client) Logout(ctx context.Context) error {
	return c.clearCredentials(ctx)
}

// bearerToken reads the stored access token, falling back to the legacy
// unscoped key for deployments that have not re-logged-in since the rename
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	token, ok, err := c.store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
	if err != nil {
		return "", err
	}
	if ok && token != "" {
		return token, nil
	}
	token, _, err = c.store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyLegacyToken)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (c *Client) clearCredentials(ctx context.Context) error {
	return c.store.Delete(ctx, credentials.ServiceClaimsAPI,
		credentials.KeyAccessToken,
		credentials.KeyRefreshToken,
		credentials.KeyAuthUser,
	)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("claimsapi: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("claimsapi: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Stored credentials are no longer valid upstream; drop them so the
		// operator is forced through a fresh login.
		if clearErr := c.clearCredentials(ctx); clearErr != nil {
			c.logger.Error("Failed to clear credentials after 401", zap.Error(clearErr))
		} else {
			c.logger.Warn("Cleared stored credentials after authorization failure",
				zap.String("path", path))
		}
		return nil, fmt.Errorf("%w: claims API returned 401", shared.ErrUnauthorized)

	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", shared.ErrNotFound, method, path)

	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: HTTP %d from %s", shared.ErrUpstream, resp.StatusCode, path)
	}

	return respBody, nil
}
