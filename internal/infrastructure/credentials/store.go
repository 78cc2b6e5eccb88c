// Package credentials holds bearer/session tokens for the upstream services.
// Each upstream owns an isolated namespace keyed by service identity, so the
// claims-API bearer token and the ledger session token can never collide or
// overwrite each other.
package credentials

import "context"

// Service identifies an upstream that owns a credential namespace
type Service string

const (
	// ServiceClaimsAPI is the claims/products REST backend
	ServiceClaimsAPI Service = "claims-api"
	// ServiceLedger is the ledger/escrow microservice
	ServiceLedger Service = "ledger"
)

// Well-known credential keys
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyAuthUser     = "authUser"
	KeySessionToken = "sessionToken"
	// KeyLegacyToken is read as a fallback for deployments that stored the
	// claims-API token under the old unscoped name. Never written.
	KeyLegacyToken = "token"
)

// Store persists credential slots per service namespace
type Store interface {
	// Get returns the stored value and whether it was present
	Get(ctx context.Context, service Service, key string) (string, bool, error)

	// Set stores a value under the service namespace
	Set(ctx context.Context, service Service, key, value string) error

	// Delete removes the given keys from the service namespace
	Delete(ctx context.Context, service Service, keys ...string) error

	// Clear removes every key in the service namespace
	Clear(ctx context.Context, service Service) error
}
