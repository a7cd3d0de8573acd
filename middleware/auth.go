package middleware

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/chirper-app/chirper-be/util"
	"github.com/gin-gonic/gin"
)

const TOKEN_KEY = "authToken"

// TokenVerifier is the slice of *auth.Client the middleware needs.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Auth resolves the caller identity from the Authorization header before
// any handler runs. Requests without a valid bearer token stay anonymous;
// pair with RequireSession on authenticated-only routes.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader, ok := c.Request.Header["Authorization"]
		if !ok || len(authorizationHeader) == 0 {
			return
		}
		if strings.Index(authorizationHeader[0], "Bearer ") != 0 || len(authorizationHeader[0]) < 8 {
			return
		}
		token, err := verifier.VerifyIDToken(c, authorizationHeader[0][7:])
		if err != nil {
			return
		}
		c.Set(TOKEN_KEY, token)
	}
}

// RequireSession aborts with an authorization error when Auth did not
// resolve a caller, before the wrapped handler runs.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(TOKEN_KEY); !exists {
			util.HandleHTTPErrorRes(c, &util.UnauthorizedHTTPErr)
			c.Abort()
		}
	}
}

// MustGetUserId assumes the route ran behind RequireSession.
func MustGetUserId(c *gin.Context) string {
	token, _ := c.Get(TOKEN_KEY)
	return token.(*auth.Token).UID
}
