package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/auth"
	"github.com/ttsbooking/consult-platform/internal/config"
	"github.com/ttsbooking/consult-platform/internal/httperr"
)

const contextPrincipal = "authPrincipal"

// SetPrincipal stashes the authenticated identity in the request context.
func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(contextPrincipal, p)
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(contextPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// MustPrincipal is for routes behind Authenticate, where a missing
// principal is a programming error.
func MustPrincipal(c *gin.Context) auth.Principal {
	p, ok := PrincipalFrom(c)
	if !ok {
		panic("principal missing from request context")
	}
	return p
}

// Authenticate verifies the bearer token and attaches the typed principal
// to the request context.
func Authenticate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_token", "No authentication token provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Malformed authorization header.")
			c.Abort()
			return
		}

		claims, err := auth.VerifyToken(cfg.JWTSecret, parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				httperr.Unauthorized(c, "token_expired", "Authentication token expired, please log in again.")
			} else {
				httperr.Unauthorized(c, "invalid_token", "Invalid authentication token.")
			}
			c.Abort()
			return
		}

		SetPrincipal(c, auth.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set. Must run after Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Unauthorized(c, "not_authenticated", "Please log in first.")
			c.Abort()
			return
		}

		if _, ok := allowed[p.Role]; !ok {
			httperr.Forbidden(c, "forbidden", "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		c.Next()
	}
}
