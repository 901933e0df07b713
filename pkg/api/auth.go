package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/services"
)

// principal identifies the authenticated caller of one request.
type principal struct {
	UserID string
	Email  string

	// Token is the raw bearer token, forwarded to the substrate so user
	// calls run under the user's own authorization. Empty for service
	// callers, which fall back to the service secret.
	Token string

	// Service is true when the caller authenticated with the service
	// role key. Service callers name the acting user in the body.
	Service bool
}

const principalKey = "foundry.principal"

// userClaims is the subset of auth-provider JWT claims the platform reads.
type userClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// authMiddleware verifies the Authorization bearer credential. A token
// equal to the service role key authenticates a trusted service; anything
// else must be a valid HS256 user JWT carrying a subject.
func authMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, kindAuthRequired, "missing bearer token")
			return
		}

		if cfg.ServiceRoleKey != "" && token == cfg.ServiceRoleKey {
			c.Set(principalKey, principal{Service: true})
			c.Next()
			return
		}

		p, err := verifyUserToken(token, cfg)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, kindAuthRequired, "invalid token")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// verifyUserToken parses and validates an HS256 user JWT. When the auth
// provider URL is configured, the issuer must match its auth endpoint.
func verifyUserToken(token string, cfg config.AuthConfig) (principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.SupabaseURL != "" {
		opts = append(opts, jwt.WithIssuer(strings.TrimRight(cfg.SupabaseURL, "/")+"/auth/v1"))
	}

	claims := &userClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return principal{}, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return principal{}, fmt.Errorf("token has no subject")
	}

	return principal{UserID: claims.Subject, Email: claims.Email, Token: token}, nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// currentPrincipal returns the request's authenticated principal.
func currentPrincipal(c *gin.Context) (principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return principal{}, false
	}
	p, ok := v.(principal)
	return p, ok
}

// resolveUserID picks the effective user for a request: end users act as
// themselves regardless of the body; service callers must name the user.
func resolveUserID(c *gin.Context, bodyUserID string) (string, error) {
	p, ok := currentPrincipal(c)
	if !ok {
		return "", fmt.Errorf("no authenticated principal")
	}
	if !p.Service {
		return p.UserID, nil
	}
	if bodyUserID == "" {
		return "", services.NewValidationError("user_id", "required for service-to-service calls")
	}
	return bodyUserID, nil
}

// reviewerName is the identity recorded on supervision actions.
func reviewerName(p principal) string {
	switch {
	case p.Email != "":
		return p.Email
	case p.UserID != "":
		return p.UserID
	default:
		return "service"
	}
}
