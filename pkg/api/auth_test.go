package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/pkg/config"
)

func TestAuthMiddleware(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("missing bearer token", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/api/work/tickets/anything", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		detail := f.readError(resp)
		assert.Equal(t, kindAuthRequired, detail.Kind)
		assert.Equal(t, "missing bearer token", detail.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/api/work/tickets/anything", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		detail := f.readError(resp)
		assert.Equal(t, kindAuthRequired, detail.Kind)
		assert.Equal(t, "invalid token", detail.Message)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		resp := f.request(http.MethodGet, "/api/work/tickets/anything", forged, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)

		resp := f.request(http.MethodGet, "/api/work/tickets/anything", expired, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid user token reaches the handler", func(t *testing.T) {
		token := signUserToken(t, uuid.New().String(), "dev@example.com")
		resp := f.request(http.MethodGet, "/api/work/tickets/"+uuid.New().String(), token, nil)
		// Past the middleware; the unknown ticket is the handler's verdict.
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, kindNotFound, f.readError(resp).Kind)
	})

	t.Run("service role key authenticates a service caller", func(t *testing.T) {
		body := submitBody()
		body.UserID = uuid.New().String()
		resp := f.request(http.MethodPost, "/api/work/queue", testServiceKey, body)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("service caller must name the acting user", func(t *testing.T) {
		resp := f.request(http.MethodPost, "/api/work/queue", testServiceKey, submitBody())
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		detail := f.readError(resp)
		assert.Equal(t, kindValidation, detail.Kind)
		assert.Equal(t, "user_id", detail.Details["field"])
	})

	t.Run("user token overrides any user_id in the body", func(t *testing.T) {
		subject := uuid.New().String()
		body := submitBody()
		body.UserID = uuid.New().String() // must be ignored

		out := f.queueWork(t, signUserToken(t, subject, ""), body)

		request, err := f.client.WorkRequest.Get(context.Background(), out.WorkRequestID)
		require.NoError(t, err)
		assert.Equal(t, subject, request.UserID)
	})
}

func TestVerifyUserToken_Issuer(t *testing.T) {
	cfg := config.AuthConfig{
		SupabaseURL: "https://proj.supabase.co/",
		JWTSecret:   testJWTSecret,
	}

	sign := func(t *testing.T, issuer string) string {
		t.Helper()
		claims := jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)
		return signed
	}

	t.Run("matching issuer", func(t *testing.T) {
		p, err := verifyUserToken(sign(t, "https://proj.supabase.co/auth/v1"), cfg)
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.UserID)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := verifyUserToken(sign(t, "https://evil.example.com/auth/v1"), cfg)
		require.Error(t, err)
	})

	t.Run("missing issuer", func(t *testing.T) {
		_, err := verifyUserToken(sign(t, ""), cfg)
		require.Error(t, err)
	})

	t.Run("issuer not enforced when the provider URL is unset", func(t *testing.T) {
		p, err := verifyUserToken(sign(t, "anything"), config.AuthConfig{JWTSecret: testJWTSecret})
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.UserID)
	})
}

func TestVerifyUserToken_RejectsMissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = verifyUserToken(signed, config.AuthConfig{JWTSecret: testJWTSecret})
	require.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER abc"))
	assert.Equal(t, "", bearerToken("Token abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestReviewerName(t *testing.T) {
	assert.Equal(t, "dev@example.com", reviewerName(principal{UserID: "u1", Email: "dev@example.com"}))
	assert.Equal(t, "u1", reviewerName(principal{UserID: "u1"}))
	assert.Equal(t, "service", reviewerName(principal{Service: true}))
}
