package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	uid string
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken != "valid-token" {
		return nil, errors.New("invalid token")
	}
	return &auth.Token{UID: s.uid}, nil
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", Auth(&stubVerifier{uid: "alice"}), RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": MustGetUserId(c)})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthResolvesCaller(t *testing.T) {
	w := request(protectedRouter(), "Bearer valid-token")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["userId"])
}

func TestRequireSessionRejectsMissingHeader(t *testing.T) {
	w := request(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireSessionRejectsMalformedHeader(t *testing.T) {
	w := request(protectedRouter(), "valid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionRejectsInvalidToken(t *testing.T) {
	w := request(protectedRouter(), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
