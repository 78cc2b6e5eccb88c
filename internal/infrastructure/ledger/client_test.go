package ledger

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

	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/claimsdesk/backend/internal/infrastructure/credentials"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credentials.MemoryStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := credentials.NewMemoryStore()
	return NewClient(server.URL, store, zap.NewNop()), store
}

func TestNewClientUsesTransportDefaults(t *testing.T) {
	client := NewClient("http://localhost:9090", credentials.NewMemoryStore(), zap.NewNop())
	assert.Zero(t, client.httpClient.Timeout)
}

func TestClient_Health(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(HealthInfo{Status: "ok", Device: "cpu", Model: "adjudicator-v1"})
	}))

	info, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, "adjudicator-v1", info.Model)
}

func TestClient_LoginFaucet(t *testing.T) {
	ctx := context.Background()

	t.Run("stores session token in ledger namespace only", func(t *testing.T) {
		client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login_faucet", r.URL.Path)
			_ = json.NewEncoder(w).Encode(FaucetSession{
				SessionToken: "session-1",
				Address:      "rTEST",
				Seed:         "sEdSECRET",
				PublicKey:    "ED01",
			})
		}))

		session, err := client.LoginFaucet(ctx)
		require.NoError(t, err)
		assert.Equal(t, "session-1", session.SessionToken)
		assert.Equal(t, "sEdSECRET", session.Seed)

		token, ok, _ := store.Get(ctx, credentials.ServiceLedger, credentials.KeySessionToken)
		assert.True(t, ok)
		assert.Equal(t, "session-1", token)

		// the claims-api namespace must be untouched
		_, ok, _ = store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
		assert.False(t, ok)
		// the recovery seed must never land in the store
		_, ok, _ = store.Get(ctx, credentials.ServiceLedger, "seed")
		assert.False(t, ok)
	})

	t.Run("missing session token is a validation error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"address": "rTEST"})
		}))

		_, err := client.LoginFaucet(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestClient_Balances(t *testing.T) {
	ctx := context.Background()
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-1", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/balances/insurer":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"insurer_address": "rINSURER", "insurer_balance_xrp": 100.5,
			})
		case "/balances/client":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"client_address": "rCLIENT", "client_balance_xrp": 20.25,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	require.NoError(t, store.Set(ctx, credentials.ServiceLedger, credentials.KeySessionToken, "session-1"))

	insurer, err := client.InsurerBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rINSURER", insurer.Address)
	assert.Equal(t, 100.5, insurer.XRP)

	claimant, err := client.ClientBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rCLIENT", claimant.Address)
	assert.Equal(t, 20.25, claimant.XRP)
}

func TestClient_FinishEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("returns finish outcome", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/escrow/finish", r.URL.Path)
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "esc_1", req["escrow_id"])

			_ = json.NewEncoder(w).Encode(FinishResult{
				EscrowID: "esc_1", Finished: true, TxHash: "ABC123",
			})
		}))

		result, err := client.FinishEscrow(ctx, "esc_1")
		require.NoError(t, err)
		assert.True(t, result.Finished)
		assert.Equal(t, "ABC123", result.TxHash)
	})

	t.Run("propagates upstream failures", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "escrow not ready"})
		}))

		_, err := client.FinishEscrow(ctx, "esc_1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrUpstream))
		assert.Contains(t, err.Error(), "escrow not ready")
	})
}

func TestClient_CancelEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cancel outcome", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/escrow/cancel", r.URL.Path)
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "esc_2", req["escrow_id"])

			_ = json.NewEncoder(w).Encode(CancelResult{EscrowID: "esc_2", Canceled: true})
		}))

		result, err := client.CancelEscrow(ctx, "esc_2")
		require.NoError(t, err)
		assert.True(t, result.Canceled)
	})

	t.Run("reports failures to the caller", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.CancelEscrow(ctx, "esc_2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrUpstream))
	})
}
