// Package middleware provides gin middleware shared by all delivery
// packages.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-dana/core-bank/pkg/tokenpkg"
	"github.com/go-dana/core-bank/pkg/web"
)

// Keys for the authorization header and the payload stored on the request
// context.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

// AddAuthorization stamps the request with a freshly minted bearer token.
func AddAuthorization(r *http.Request, tokenMaker tokenpkg.Maker, authType, username, role string, duration time.Duration) error {
	accessToken, _, err := tokenMaker.CreateToken(username, role, duration)
	if err != nil {
		return err
	}

	r.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authType, accessToken))

	return nil
}

// Auth verifies the bearer token and installs its payload on the context.
func Auth(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		authHeader := gctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			err := errors.New("authorization header is not provided")
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		authType := strings.ToLower(fields[0])
		if authType != AuthTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Next()
	}
}

// RequireAdmin rejects requests whose token payload does not carry the
// admin role. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		authPayload := gctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)

		if authPayload.Role != tokenpkg.RoleAdmin {
			err := errors.New("admin role required")
			gctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(err))

			return
		}

		gctx.Next()
	}
}
