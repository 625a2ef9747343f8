// Package middleware holds the gin middleware shared by the three services.
package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"insurance_portal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	ServiceKeyHeader = "X-Service-Key"
	ServiceCaller    = "service"

	currentUserKey = "current_user"
	tokenQueryKey  = "token"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// Claims is the payload of a portal session token.
type Claims struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthConfig configures Auth. An empty Secret rejects every token.
type AuthConfig struct {
	Secret       string
	SignInURL    string
	CookieName   string
	AllowedRoles []string
	ServiceKey   string
	Secure       bool
}

var (
	skippedPaths    = map[string]bool{"/health": true, "/v1/ping": true, "/metrics": true}
	skippedPrefixes = []string{"/swagger/"}
)

func skipsAuth(path string) bool {
	if skippedPaths[path] {
		return true
	}
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Auth authenticates requests with a signed session token or the internal
// service key.
//
// Token lookup order is the token query parameter, then the session cookie,
// then the Authorization bearer header. A query token is moved into the
// cookie and the request is redirected without it.
func Auth(cfg AuthConfig, logger *zap.Logger) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedRoles))
	for _, r := range cfg.AllowedRoles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipsAuth(path) {
			c.Next()
			return
		}

		if key := c.GetHeader(ServiceKeyHeader); key != "" && cfg.ServiceKey != "" &&
			subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ServiceKey)) == 1 {
			c.Set(currentUserKey, &Claims{UserID: ServiceCaller, Roles: []string{ServiceCaller}})
			c.Next()
			return
		}

		if raw := c.Query(tokenQueryKey); raw != "" {
			if _, err := parseToken(raw, cfg.Secret); err == nil {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(cfg.CookieName, raw, 0, "/", "", cfg.Secure, true)
				c.Redirect(http.StatusFound, withoutToken(c.Request.URL))
				c.Abort()
				return
			}
		}

		claims, err := sessionClaims(c, cfg)
		if err != nil {
			logger.Info("[auth][middleware] rejected", zap.String("path", path), zap.Error(err))
			unauthenticated(c, cfg.SignInURL)
			return
		}
		if !hasAllowedRole(claims.Roles, allowed) {
			logger.Info("[auth][middleware] forbidden", zap.String("user_id", claims.UserID), zap.Strings("roles", claims.Roles))
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Set(currentUserKey, claims)
		c.Next()
	}
}

// sessionClaims tries the cookie first. A cookie that no longer verifies
// does not hide a valid bearer header.
func sessionClaims(c *gin.Context, cfg AuthConfig) (*Claims, error) {
	var cookieErr error
	if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie != "" {
		claims, err := parseToken(cookie, cfg.Secret)
		if err == nil {
			return claims, nil
		}
		cookieErr = err
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return parseToken(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), cfg.Secret)
	}
	if cookieErr != nil {
		return nil, cookieErr
	}
	return parseToken("", cfg.Secret)
}

// CurrentUser returns the claims stored by Auth, or nil on skipped paths.
func CurrentUser(c *gin.Context) *Claims {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

// SignToken issues a session token. Used by tests and local tooling.
func SignToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(raw, secret string) (*Claims, error) {
	if raw == "" {
		return nil, errors.New("missing token")
	}
	if secret == "" {
		return nil, errors.New("token verification is not configured")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func hasAllowedRole(roles []string, allowed map[string]bool) bool {
	for _, r := range roles {
		if allowed[r] {
			return true
		}
	}
	return false
}

// unauthenticated sends browsers to the sign-in page and API callers a 401.
func unauthenticated(c *gin.Context, signInURL string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") && signInURL != "" {
		target := signInURL + "?redirect=" + url.QueryEscape(c.Request.URL.String())
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
}

func withoutToken(u *url.URL) string {
	cp := *u
	q := cp.Query()
	q.Del(tokenQueryKey)
	cp.RawQuery = q.Encode()
	return cp.RequestURI()
}
