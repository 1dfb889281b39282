package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"social_backend/internal/pkg/bizerr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, h gin.HandlerFunc) (int, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestSuccess(t *testing.T) {
	status, resp := run(t, func(c *gin.Context) { Success(c, gin.H{"id": 1}) })

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	assert.Equal(t, CodeSuccess, resp.Code)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		read   bool
		status int
		code   int
		msg    string
	}{
		{"not found on write", bizerr.NotFound("Post not found"), false, http.StatusBadRequest, ErrNotFound, "Post not found"},
		{"not found on read", bizerr.NotFound("Post not found"), true, http.StatusNotFound, ErrNotFound, "Post not found"},
		{"duplicate", bizerr.AlreadyExists("Already liked this post"), false, http.StatusBadRequest, ErrAlreadyExists, "Already liked this post"},
		{"self", bizerr.SelfReference("Cannot follow yourself"), false, http.StatusBadRequest, ErrSelfReference, "Cannot follow yourself"},
		{"comments disabled", bizerr.CommentsDisabled("Comments are disabled for this post"), false, http.StatusBadRequest, ErrCommentsDisabled, "Comments are disabled for this post"},
		{"wrapped internal", bizerr.Internal("like.Create", errors.New("pq: connection reset")), false, http.StatusInternalServerError, ErrServerInternal, "Internal server error"},
		{"plain error", errors.New("unexpected"), true, http.StatusInternalServerError, ErrServerInternal, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := run(t, func(c *gin.Context) {
				if tt.read {
					FromReadError(c, tt.err)
				} else {
					FromError(c, tt.err)
				}
			})

			assert.Equal(t, tt.status, status)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.msg, resp.Message)
		})
	}
}
