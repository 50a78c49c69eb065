package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"
	"cablequote/pkg"
	logx "cablequote/pkg/logger"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or expired session", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role cannot access this feature", http.StatusForbidden)
)

// Auth resolves the bearer token into a session and stores it on the
// context for SessionFrom.
func Auth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		s, err := auth.Session(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) {
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			logx.Error().Err(err).Msg("[auth][middleware] session lookup failed")
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireFeature rejects sessions whose role cannot use feature. It must run
// after Auth.
func RequireFeature(feature entities.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !s.Can(feature) {
			logx.Warn().Str("role", string(s.Role)).Str("feature", string(feature)).Msg("[auth][middleware] feature denied")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

// SetSession is what Auth does on success. Handler tests use it to skip the
// token lookup.
func SetSession(c *gin.Context, s entities.Session) {
	c.Set(sessionKey, s)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
