package claimsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/claimsdesk/backend/internal/domain/claims"
	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/claimsdesk/backend/internal/infrastructure/credentials"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credentials.MemoryStore, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := credentials.NewMemoryStore()
	client := NewClient(server.URL, store, zap.NewNop())
	return client, store, server
}

func sampleClaim(id, escrowID string, status claims.ClaimStatus, decision claims.AIDecision) claims.Claim {
	d := decision
	return claims.Claim{
		ID:                  id,
		PolicyID:            "pol_" + id,
		Status:              status,
		PolicyEscrowID:      escrowID,
		Details:             "details",
		EvidenceURL:         "https://example.com/evidence.pdf",
		AIDecision:          &d,
		PayoutDropsSnapshot: "1000",
		ProductID:           "prd_1",
		ProductName:         "Airplain Delay Insurance",
		ProductCategory:     "DEVICE",
		ProductPremiumDrops: "1000",
		ProductPayoutDrops:  "1000",
	}
}

func TestNewClientUsesTransportDefaults(t *testing.T) {
	client := NewClient("http://localhost:8080", credentials.NewMemoryStore(), zap.NewNop())
	assert.Zero(t, client.httpClient.Timeout)
}

func TestClient_BearerToken(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches stored access token", func(t *testing.T) {
		var gotAuth string
		client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(claims.ClaimList{Items: []claims.Claim{}})
		}))
		require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken, "jwt-abc"))

		_, err := client.ListClaims(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer jwt-abc", gotAuth)
	})

	t.Run("falls back to legacy token key", func(t *testing.T) {
		var gotAuth string
		client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(claims.ClaimList{Items: []claims.Claim{}})
		}))
		require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyLegacyToken, "legacy-tok"))

		_, err := client.ListClaims(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer legacy-tok", gotAuth)
	})

	t.Run("no token means unauthenticated request", func(t *testing.T) {
		var gotAuth string
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(claims.ClaimList{Items: []claims.Claim{}})
		}))

		_, err := client.ListClaims(ctx)
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_AuthorizationFailureClearsCredentials(t *testing.T) {
	ctx := context.Background()
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken, "expired"))
	require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyRefreshToken, "refresh"))
	require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAuthUser, `{"id":"u1"}`))

	_, err := client.ListClaims(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrUnauthorized))

	for _, key := range []string{credentials.KeyAccessToken, credentials.KeyRefreshToken, credentials.KeyAuthUser} {
		_, ok, getErr := store.Get(ctx, credentials.ServiceClaimsAPI, key)
		require.NoError(t, getErr)
		assert.False(t, ok, "key %q must be cleared after 401", key)
	}
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores credentials on success", func(t *testing.T) {
		client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "operator", req["username"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"accessToken":  "jwt-1",
				"refreshToken": "refresh-1",
				"user":         map[string]string{"id": "u1"},
			})
		}))

		result, err := client.Login(ctx, "operator", "secret")
		require.NoError(t, err)
		assert.Equal(t, "jwt-1", result.AccessToken)

		token, ok, _ := store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
		assert.True(t, ok)
		assert.Equal(t, "jwt-1", token)
		refresh, ok, _ := store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyRefreshToken)
		assert.True(t, ok)
		assert.Equal(t, "refresh-1", refresh)
		user, ok, _ := store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAuthUser)
		assert.True(t, ok)
		assert.JSONEq(t, `{"id":"u1"}`, user)
	})

	t.Run("accepts token under legacy field name", func(t *testing.T) {
		client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "jwt-legacy"})
		}))

		result, err := client.Login(ctx, "operator", "secret")
		require.NoError(t, err)
		assert.Equal(t, "jwt-legacy", result.AccessToken)

		token, ok, _ := store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
		assert.True(t, ok)
		assert.Equal(t, "jwt-legacy", token)
	})

	t.Run("response without token is a validation error and stores nothing", func(t *testing.T) {
		client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"id": "u1"}})
		}))

		_, err := client.Login(ctx, "operator", "secret")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))

		for _, key := range []string{credentials.KeyAccessToken, credentials.KeyRefreshToken, credentials.KeyAuthUser} {
			_, ok, getErr := store.Get(ctx, credentials.ServiceClaimsAPI, key)
			require.NoError(t, getErr)
			assert.False(t, ok, "key %q must not be written on failed login", key)
		}
	})
}

func TestClient_GetClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("returns NotFound for unknown id", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetClaim(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("list item and single fetch are field-identical", func(t *testing.T) {
		claim := sampleClaim("clm_1", "esc_1", claims.ClaimStatusManual, claims.AIDecisionEscalate)
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/claims":
				_ = json.NewEncoder(w).Encode(claims.ClaimList{Items: []claims.Claim{claim}})
			case "/claims/clm_1":
				_ = json.NewEncoder(w).Encode(claim)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		list, err := client.ListClaims(ctx)
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Nil(t, list.NextCursor)

		single, err := client.GetClaim(ctx, "clm_1")
		require.NoError(t, err)
		assert.Equal(t, list.Items[0], *single)
	})
}

func TestClient_Logout(t *testing.T) {
	ctx := context.Background()
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, store.Set(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken, "jwt"))
	require.NoError(t, client.Logout(ctx))

	_, ok, err := store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}
