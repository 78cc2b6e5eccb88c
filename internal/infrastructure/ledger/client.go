// Package ledger is the HTTP client for the external ledger/escrow
// microservice. It manages its own session token, obtained through a faucet
// login, in a credential namespace separate from the claims-API bearer token.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/claimsdesk/backend/internal/infrastructure/credentials"
)

const (
	healthPath         = "/health"
	faucetLoginPath    = "/auth/login_faucet"
	insurerBalancePath = "/balances/insurer"
	clientBalancePath  = "/balances/client"
	escrowFinishPath   = "/escrow/finish"
	escrowCancelPath   = "/escrow/cancel"
)

// Client issues requests to the ledger/escrow service
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credentials.Store
	logger     *zap.Logger
}

// NewClient creates a ledger service client
func NewClient(baseURL string, store credentials.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		store:      store,
		logger:     logger.Named("ledger"),
	}
}

// HealthInfo is the ledger service liveness payload, used for diagnostics only
type HealthInfo struct {
	Status string `json:"status"`
	Device string `json:"device"`
	Model  string `json:"model"`
}

// FaucetSession is a fresh test-network session. The recovery seed exists on
// the test network only and must never be persisted.
type FaucetSession struct {
	SessionToken string `json:"session_token"`
	Address      string `json:"address"`
	Seed         string `json:"seed"`
	PublicKey    string `json:"public_key"`
}

// Balance is one party's ledger balance
type Balance struct {
	Address string
	XRP     float64
}

// FinishResult is the outcome of an escrow finalization
type FinishResult struct {
	EscrowID string `json:"escrow_id"`
	Finished bool   `json:"finished"`
	TxHash   string `json:"tx_hash"`
	Message  string `json:"message"`
}

// CancelResult is the outcome of an escrow cancellation
type CancelResult struct {
	EscrowID string `json:"escrow_id"`
	Canceled bool   `json:"canceled"`
	TxHash   string `json:"tx_hash"`
	Message  string `json:"message"`
}

// Health returns ledger service liveness info
func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return nil, err
	}
	var info HealthInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("ledger: parse health response: %w", err)
	}
	return &info, nil
}

// LoginFaucet requests a fresh test-network session and stores its token in
// the ledger namespace for subsequent calls. The returned seed is passed
// through to the caller but never written to the credential store.
func (c *Client) LoginFaucet(ctx context.Context) (*FaucetSession, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, faucetLoginPath, nil)
	if err != nil {
		return nil, err
	}

	var session FaucetSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("ledger: parse faucet login response: %w", err)
	}
	if session.SessionToken == "" {
		return nil, fmt.Errorf("%w: no session token in faucet login response", shared.ErrValidation)
	}

	if err := c.store.Set(ctx, credentials.ServiceLedger, credentials.KeySessionToken, session.SessionToken); err != nil {
		return nil, err
	}

	c.logger.Info("Faucet session established",
		zap.String("address", session.Address),
		zap.String("seed", "[redacted]"),
	)

	return &session, nil
}

// InsurerBalance returns the insurer's current ledger balance
func (c *Client) InsurerBalance(ctx context.Context) (*Balance, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, insurerBalancePath, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Address string  `json:"insurer_address"`
		XRP     float64 `json:"insurer_balance_xrp"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("ledger: parse insurer balance: %w", err)
	}
	return &Balance{Address: resp.Address, XRP: resp.XRP}, nil
}

// ClientBalance returns the claimant's current ledger balance
func (c *Client) ClientBalance(ctx context.Context) (*Balance, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, clientBalancePath, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Address string  `json:"client_address"`
		XRP     float64 `json:"client_balance_xrp"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("ledger: parse client balance: %w", err)
	}
	return &Balance{Address: resp.Address, XRP: resp.XRP}, nil
}

type escrowRequest struct {
	EscrowID string `json:"escrow_id"`
}

// FinishEscrow requests finalization of an escrow, releasing funds to the
// claimant. Failures propagate; a payout action must not fail silently.
func (c *Client) FinishEscrow(ctx context.Context, escrowID string) (*FinishResult, error) {
	body, err := json.Marshal(escrowRequest{EscrowID: escrowID})
	if err != nil {
		return nil, fmt.Errorf("ledger: marshal finish request: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, escrowFinishPath, body)
	if err != nil {
		return nil, err
	}

	var result FinishResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("ledger: parse finish response: %w", err)
	}
	return &result, nil
}

// CancelEscrow requests cancellation of an escrow, returning funds to the
// insurer. The client reports failures like any other call; the decision to
// treat cancellation failures as non-fatal belongs to the caller.
func (c *Client) CancelEscrow(ctx context.Context, escrowID string) (*CancelResult, error) {
	body, err := json.Marshal(escrowRequest{EscrowID: escrowID})
	if err != nil {
		return nil, fmt.Errorf("ledger: marshal cancel request: %w", err)
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, escrowCancelPath, body)
	if err != nil {
		return nil, err
	}

	var result CancelResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("ledger: parse cancel response: %w", err)
	}
	return &result, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ledger: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token, ok, err := c.store.Get(ctx, credentials.ServiceLedger, credentials.KeySessionToken)
	if err != nil {
		return nil, err
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ledger: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s (HTTP %d)", shared.ErrUpstream, errResp.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: HTTP %d from %s", shared.ErrUpstream, resp.StatusCode, path)
	}

	return respBody, nil
}
