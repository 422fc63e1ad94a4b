package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/nilotpaul/fanlift-auth/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBase44(t *testing.T, h http.HandlerFunc) *Base44Store {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewBase44Store(Base44Config{
		BaseURL:    srv.URL + "/",
		AppID:      "app-1",
		APIKey:     "key-1",
		HTTPClient: srv.Client(),
	})
}

func TestBase44Store_FindUsersByEmail(t *testing.T) {
	s := newTestBase44(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/apps/app-1/entities/User", r.URL.Path)
		assert.Equal(t, `{"email":"jane@example.com"}`, r.URL.Query().Get("q"))
		assert.Equal(t, "key-1", r.Header.Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"u1","email":"jane@example.com","full_name":"Jane","subscription_status":"active","onboarding_completed":true,"created_date":"2024-05-01T10:00:00.000000"},
			{"id":"u2","email":"jane@example.com"}
		]`))
	})

	users, err := s.FindUsersByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "active", users[0].SubscriptionStatus)
	assert.True(t, users[0].OnboardingCompleted)
	assert.Equal(t, "u2", users[1].ID)
}

func TestBase44Store_CreateUser(t *testing.T) {
	s := newTestBase44(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/apps/app-1/entities/User", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		assert.Equal(t, map[string]any{
			"email":                   "jane@example.com",
			"full_name":               "jane",
			"subscription_status":     "none",
			"questionnaire_completed": false,
			"onboarding_completed":    false,
			"platform_connected":      false,
		}, body)

		_, _ = w.Write([]byte(`{"id":"u9","email":"jane@example.com","full_name":"jane","subscription_status":"none"}`))
	})

	u, err := s.CreateUser(context.Background(), types.CreateUserParams{
		Email:              "jane@example.com",
		FullName:           "jane",
		SubscriptionStatus: "none",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", u.ID)
}

func TestBase44Store_GenerateSessionToken(t *testing.T) {
	s := newTestBase44(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apps/app-1/auth/session-token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u9", body["user_id"])

		_, _ = w.Write([]byte(`{"token":"sess-1"}`))
	})

	token, err := s.GenerateSessionToken(context.Background(), "u9")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", token)
}

func TestBase44Store_Errors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		s := newTestBase44(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
		})

		_, err := s.FindUsersByEmail(context.Background(), "jane@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("missing app id fails without a request", func(t *testing.T) {
		var calls int
		s := newTestBase44(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
		})
		s.appID = ""

		_, err := s.GenerateSessionToken(context.Background(), "u9")

		var appErr *util.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, util.ErrConfig, appErr.Kind)
		assert.Equal(t, 0, calls)
	})
}
