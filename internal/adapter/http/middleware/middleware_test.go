package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func actorRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Actor(secret))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, ActorFrom(c))
	})
	return r
}

func doRequest(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActor(t *testing.T) {
	t.Run("header without secret", func(t *testing.T) {
		w := doRequest(actorRouter(""), map[string]string{HeaderUserID: " clerk-1 "})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "clerk-1", w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		w := doRequest(actorRouter(testSecret), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("valid token wins over header", func(t *testing.T) {
		token := signed(t, jwt.RegisteredClaims{Subject: "u-42", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}, testSecret)
		w := doRequest(actorRouter(testSecret), map[string]string{"Authorization": "Bearer " + token, HeaderUserID: "spoofed"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-42", w.Body.String())
	})

	t.Run("user_id claim preferred", func(t *testing.T) {
		token := signed(t, &Claims{UserID: "u-7", RegisteredClaims: jwt.RegisteredClaims{Subject: "other"}}, testSecret)
		w := doRequest(actorRouter(testSecret), map[string]string{"Authorization": "bearer " + token})
		assert.Equal(t, "u-7", w.Body.String())
	})

	rejected := map[string]string{
		"wrong secret": signed(t, jwt.RegisteredClaims{Subject: "u-1"}, "other-secret"),
		"expired":      signed(t, jwt.RegisteredClaims{Subject: "u-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}, testSecret),
		"no subject":   signed(t, jwt.RegisteredClaims{}, testSecret),
		"garbage":      "not-a-jwt",
	}
	for name, token := range rejected {
		t.Run(name, func(t *testing.T) {
			w := doRequest(actorRouter(testSecret), map[string]string{"Authorization": "Bearer " + token})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"code":"UNAUTHORIZED","message":"Invalid or expired token"}`, w.Body.String())
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Actor(""), NewRateLimiter(0.001, 2).Handler())
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusNoContent, doRequest(r, map[string]string{HeaderUserID: "a"}).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, map[string]string{HeaderUserID: "a"}).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, map[string]string{HeaderUserID: "b"}).Code, "buckets are per client")
}

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(0, 1).Handler())
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, doRequest(r, nil).Code)
	}
}

func TestRecoveryAndLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), Metrics(), Recovery())
	r.GET("/whoami", func(c *gin.Context) { panic("boom") })

	w := doRequest(r, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}`, w.Body.String())
}
