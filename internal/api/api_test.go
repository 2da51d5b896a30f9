package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nahidff/likebot/internal/api"
	"github.com/nahidff/likebot/internal/api/response"
	"github.com/nahidff/likebot/internal/factory"
	"github.com/nahidff/likebot/internal/services/account"
)

const adminToken = "test-admin-token"

// testServer creates a test server with all dependencies
type testServer struct {
	handler  http.Handler
	accounts *account.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use the production factory
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminToken), bcrypt.MinCost)
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		BotRouter:       app.BotRouter,
		AccountService:  app.AccountService,
		AdminTokenHash:  string(hash),
		MetricsGatherer: app.Registry,
	})

	return &testServer{
		handler:  router,
		accounts: app.AccountService,
	}
}

func (ts *testServer) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) command(t *testing.T, userID, command string, args ...string) response.Reply {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/v1/commands", map[string]any{
		"user_id": userID,
		"command": command,
		"args":    args,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var reply response.Reply
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reply))
	return reply
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCommandDispatch(t *testing.T) {
	ts := newTestServer(t)

	reply := ts.command(t, "12345", "start")
	assert.True(t, reply.Handled)
	assert.Contains(t, reply.Text, "Welcome to Free Fire Bot!")
}

func TestCommandRequiresUserID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/commands", map[string]any{
		"command": "start",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommandRequiresCommand(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/commands", map[string]any{
		"user_id": "12345",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownCommandIsUnhandled(t *testing.T) {
	ts := newTestServer(t)

	reply := ts.command(t, "12345", "frobnicate")
	assert.False(t, reply.Handled)
	assert.Empty(t, reply.Text)
}

func TestVerificationRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	// Begin verification
	reply := ts.command(t, "12345", "verify")
	require.NotNil(t, reply.Prompt)
	assert.Equal(t, "verify_joined", reply.Prompt.CallbackData)

	// Confirm via callback
	rec := ts.request(t, http.MethodPost, "/api/v1/callbacks", map[string]string{
		"user_id": "12345",
		"data":    reply.Prompt.CallbackData,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var confirm response.Reply
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&confirm))
	assert.Contains(t, confirm.Text, "Verification complete")

	// Paid action now works
	reply = ts.command(t, "12345", "like", "bd", "554433")
	assert.Equal(t, "✅ Sent like to UID 554433 in BD region!", reply.Text)

	// And the coin is spent
	reply = ts.command(t, "12345", "coins")
	assert.Equal(t, "🪙 Your coins: 0", reply.Text)
}

func TestCallbackRequiresData(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/callbacks", map[string]string{
		"user_id": "12345",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Admin endpoints

func TestAdminRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/admin/accounts/12345", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/v1/admin/accounts/12345", nil, "wrong-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGetAccount(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/admin/accounts/12345", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var acct response.Account
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&acct))
	assert.Equal(t, "12345", acct.ID)
	assert.Equal(t, int64(0), acct.Coins)
	assert.False(t, acct.VIP)
}

func TestAdminSetVIPEnablesBypass(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPut, "/api/v1/admin/accounts/12345/vip", map[string]bool{
		"vip": true,
	}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var acct response.Account
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&acct))
	assert.True(t, acct.VIP)

	// VIP can use paid actions with zero coins and no verification
	reply := ts.command(t, "12345", "visit", "pk", "777")
	assert.Equal(t, "✅ Sent visit to UID 777 in PK region!", reply.Text)
}

func TestAdminCredit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/admin/accounts/12345/credit", map[string]int64{
		"amount": 10,
	}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var acct response.Account
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&acct))
	assert.Equal(t, int64(10), acct.Coins)
}

func TestAdminCreditRejectsNonPositiveAmount(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/admin/accounts/12345/credit", map[string]int64{
		"amount": 0,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
