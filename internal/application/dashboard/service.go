// Package dashboard orchestrates the operator console flows: ledger session
// bootstrap, manual login against the claims API, claims retrieval, and the
// accept/decline escrow actions.
package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/claimsdesk/backend/internal/domain/claims"
	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/claimsdesk/backend/internal/infrastructure/claimsapi"
	"github.com/claimsdesk/backend/internal/infrastructure/ledger"
)

// ClaimsAPI is the claims/products backend surface the dashboard needs
type ClaimsAPI interface {
	Login(ctx context.Context, username, password string) (*claimsapi.LoginResult, error)
	ListClaims(ctx context.Context) (*claims.ClaimList, error)
	GetClaim(ctx context.Context, id string) (*claims.Claim, error)
	Logout(ctx context.Context) error
}

// LedgerService is the ledger/escrow backend surface the dashboard needs
type LedgerService interface {
	Health(ctx context.Context) (*ledger.HealthInfo, error)
	LoginFaucet(ctx context.Context) (*ledger.FaucetSession, error)
	InsurerBalance(ctx context.Context) (*ledger.Balance, error)
	ClientBalance(ctx context.Context) (*ledger.Balance, error)
	FinishEscrow(ctx context.Context, escrowID string) (*ledger.FinishResult, error)
	CancelEscrow(ctx context.Context, escrowID string) (*ledger.CancelResult, error)
}

// Service coordinates the two upstreams for the operator console
type Service struct {
	claimsAPI ClaimsAPI
	ledger    LedgerService
	logger    *zap.Logger
}

// NewService creates a dashboard service
func NewService(claimsAPI ClaimsAPI, ledgerSvc LedgerService, logger *zap.Logger) *Service {
	return &Service{
		claimsAPI: claimsAPI,
		ledger:    ledgerSvc,
		logger:    logger.Named("dashboard"),
	}
}

// BootstrapResult is the console's initial ledger snapshot. Each field is
// filled independently; a failed lookup leaves its zero value in place.
type BootstrapResult struct {
	LedgerReady    bool
	LedgerAddress  string
	InsurerBalance float64
	InsurerAddress string
	ClientBalance  float64
	ClientAddress  string
}

// Bootstrap establishes the ledger faucet session and fetches both balances.
// None of the three calls is fatal: a failure is logged and the operator
// sees the remaining data with balances defaulting to zero.
func (s *Service) Bootstrap(ctx context.Context) *BootstrapResult {
	result := &BootstrapResult{}

	session, err := s.ledger.LoginFaucet(ctx)
	if err != nil {
		s.logger.Error("Ledger faucet login failed", zap.Error(err))
	} else {
		result.LedgerReady = true
		result.LedgerAddress = session.Address
	}

	if insurer, err := s.ledger.InsurerBalance(ctx); err != nil {
		s.logger.Error("Insurer balance fetch failed", zap.Error(err))
	} else {
		result.InsurerBalance = insurer.XRP
		result.InsurerAddress = insurer.Address
	}

	if claimant, err := s.ledger.ClientBalance(ctx); err != nil {
		s.logger.Error("Client balance fetch failed", zap.Error(err))
	} else {
		result.ClientBalance = claimant.XRP
		result.ClientAddress = claimant.Address
	}

	return result
}

// Login authenticates the operator against the claims API
func (s *Service) Login(ctx context.Context, username, password string) (*claimsapi.LoginResult, error) {
	return s.claimsAPI.Login(ctx, username, password)
}

// Logout invalidates the stored claims-API credentials
func (s *Service) Logout(ctx context.Context) error {
	return s.claimsAPI.Logout(ctx)
}

// FetchClaims returns the current claims list
func (s *Service) FetchClaims(ctx context.Context) (*claims.ClaimList, error) {
	return s.claimsAPI.ListClaims(ctx)
}

// GetClaim returns a single claim by id
func (s *Service) GetClaim(ctx context.Context, id string) (*claims.Claim, error) {
	return s.claimsAPI.GetClaim(ctx, id)
}

// LedgerHealth returns ledger service diagnostics
func (s *Service) LedgerHealth(ctx context.Context) (*ledger.HealthInfo, error) {
	return s.ledger.Health(ctx)
}

// Accept finalizes the escrow bound to the claim, releasing funds to the
// claimant. A finish failure propagates to the caller: a payout action must
// never fail silently.
func (s *Service) Accept(ctx context.Context, claimID string) (*ledger.FinishResult, error) {
	claim, err := s.claimsAPI.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if !claim.Actionable() {
		return nil, fmt.Errorf("%w: claim %s is not open for manual action", shared.ErrInvalidState, claimID)
	}

	result, err := s.ledger.FinishEscrow(ctx, claim.PolicyEscrowID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Escrow finished for accepted claim",
		zap.String("claim_id", claim.ID),
		zap.String("escrow_id", claim.PolicyEscrowID),
		zap.String("tx_hash", result.TxHash),
	)
	return result, nil
}

// Decline cancels the escrow bound to the claim, returning funds to the
// insurer. A cancel failure is deliberately non-fatal: it is logged once and
// reported through the Canceled flag so the console flow keeps working.
func (s *Service) Decline(ctx context.Context, claimID string) (*ledger.CancelResult, error) {
	claim, err := s.claimsAPI.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if !claim.Actionable() {
		return nil, fmt.Errorf("%w: claim %s is not open for manual action", shared.ErrInvalidState, claimID)
	}

	result, err := s.ledger.CancelEscrow(ctx, claim.PolicyEscrowID)
	if err != nil {
		s.logger.Error("Escrow cancel failed",
			zap.String("claim_id", claim.ID),
			zap.String("escrow_id", claim.PolicyEscrowID),
			zap.Error(err),
		)
		return &ledger.CancelResult{
			EscrowID: claim.PolicyEscrowID,
			Canceled: false,
			Message:  err.Error(),
		}, nil
	}

	s.logger.Info("Escrow canceled for declined claim",
		zap.String("claim_id", claim.ID),
		zap.String("escrow_id", claim.PolicyEscrowID),
	)
	return result, nil
}
