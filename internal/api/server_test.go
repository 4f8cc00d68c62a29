package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdrmf/foundation-api/internal/api"
	"github.com/tdrmf/foundation-api/internal/config"
	"github.com/tdrmf/foundation-api/internal/payment"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

type fakeStore struct{}

func (fakeStore) Put(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return nil
}

func (fakeStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + key, nil
}

func (fakeStore) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeProvider struct{}

func (fakeProvider) CreatePaymentIntent(_ context.Context, _ int64, _ string, _ map[string]string) (payment.Intent, error) {
	return payment.Intent{ID: "pi_test_1", ClientSecret: "pi_test_1_secret"}, nil
}

func (fakeProvider) CreateSubscription(_ context.Context, _, _ string, _ int64, _ string, _ map[string]string) (payment.Subscription, error) {
	return payment.Subscription{ID: "sub_test_1", ClientSecret: "sub_test_1_secret"}, nil
}

func (fakeProvider) VerifyWebhook(_ []byte, _ string) (payment.Event, error) {
	return payment.Event{}, payment.ErrInvalidSignature
}

type fakeMailer struct{}

func (fakeMailer) SendDonationReceipt(_ string, _ int64, _ uint) error {
	return nil
}

func (fakeMailer) SendContactNotification(_, _, _, _ string) error {
	return nil
}

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(gormDB))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "8080",
			JWTSigningKey:      "test-signing-key",
			JWTExpiryMinutes:   60,
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return api.NewServer(conf, gormDB, fakeStore{}, fakeProvider{}, fakeMailer{})
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_AdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/admin/events"},
		{http.MethodGet, "/api/v1/admin/gallery/pending"},
		{http.MethodGet, "/api/v1/admin/donations"},
		{http.MethodGet, "/api/v1/admin/donations/stats"},
		{http.MethodDelete, "/api/v1/admin/sponsors/1"},
		{http.MethodGet, "/api/v1/admin/events/1/rsvps"},
		{http.MethodGet, "/api/v1/admin/audit"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()
			s.Router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestServer_RegisterLoginAndGetMe(t *testing.T) {
	s := newTestServer(t)

	register := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	register.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, register)
	require.Equal(t, http.StatusCreated, w.Code)

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	login.Header.Set("Content-Type", "application/json")
	login.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, login)
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	me := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	me.Header.Set("Authorization", "Bearer "+loginResp.Token)
	me.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, me)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
}

func adminToken(t *testing.T, s *api.Server) string {
	t.Helper()

	register := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	register.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, register)
	require.Equal(t, http.StatusCreated, w.Code)

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	login.Header.Set("Content-Type", "application/json")
	login.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, login)
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

func TestServer_AdminEventRSVPCountAndAuditHistory(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t, s)

	create := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events",
		strings.NewReader(`{"title":"Memorial Walk","start_at":"2030-05-01T10:00:00Z","is_published":true}`))
	create.Header.Set("Content-Type", "application/json")
	create.Header.Set("Authorization", "Bearer "+token)
	create.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, create)
	require.Equal(t, http.StatusCreated, w.Code)

	var event struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.NotZero(t, event.ID)

	rsvp := httptest.NewRequest(http.MethodPost, "/api/v1/events/1/rsvp",
		strings.NewReader(`{"name":"Jamie Williams","email":"jamie@example.com"}`))
	rsvp.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, rsvp)
	require.Equal(t, http.StatusCreated, w.Code)

	count := httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/1/rsvps", nil)
	count.Header.Set("Authorization", "Bearer "+token)
	count.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, count)
	require.Equal(t, http.StatusOK, w.Code)

	var countResp struct {
		EventID uint  `json:"event_id"`
		Count   int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countResp))
	assert.Equal(t, event.ID, countResp.EventID)
	assert.Equal(t, int64(1), countResp.Count)

	audit := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit?entity=event&entity_id=1", nil)
	audit.Header.Set("Authorization", "Bearer "+token)
	audit.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, audit)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Action string `json:"action"`
		Entity string `json:"entity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "create", entries[0].Action)
	assert.Equal(t, "event", entries[0].Entity)

	missing := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit?entity_id=1", nil)
	missing.Header.Set("Authorization", "Bearer "+token)
	missing.Header.Set("User-Agent", "test-agent")
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_DonationCheckout(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/checkout",
		strings.NewReader(`{"amount_cents":2500,"donor_email":"donor@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ClientSecret    string `json:"client_secret"`
		PaymentIntentID string `json:"payment_intent_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_test_1_secret", resp.ClientSecret)
	assert.Equal(t, "pi_test_1", resp.PaymentIntentID)
}

func TestServer_WebhookRejectsBadSignature(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/webhook",
		strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "bad-sig")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_ContactSubmit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact",
		strings.NewReader(`{"name":"Jamie Williams","email":"jamie@example.com","message":"How can I volunteer?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
