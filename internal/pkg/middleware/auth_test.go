package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"social_backend/internal/pkg/config"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func setupRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.GlobalConfig.JWT.Secret = "0123456789abcdef0123456789abcdef"

	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		if id, ok := GetUserID(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter(AuthMiddleware())

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doRequest(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := utils.GenerateToken(5, "carol")
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":5}`, w.Body.String())
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := setupRouter(OptionalAuthMiddleware())

	t.Run("anonymous", func(t *testing.T) {
		w := doRequest(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":null}`, w.Body.String())
	})

	t.Run("bad token falls back to anonymous", func(t *testing.T) {
		w := doRequest(r, "Bearer garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":null}`, w.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := utils.GenerateToken(9, "dave")
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token)
		assert.JSONEq(t, `{"user_id":9}`, w.Body.String())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	r := setupRouter(RateLimitMiddleware(NewIPRateLimiter(rate.Limit(1), 1), nil))

	assert.Equal(t, http.StatusOK, doRequest(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "").Code)
}
