package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"permit_tracker/pkg"
)

// ActorKey is the gin context key holding the id of the user acting on the request.
const ActorKey = "actor"

// HeaderUserID carries the actor id when no bearer token is sent.
const HeaderUserID = "X-User-ID"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)

// Claims are the JWT claims accepted from callers. The actor id is UserID, or the subject.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Actor resolves the acting user. With a secret configured, a bearer token must be a valid
// HS256 JWT; without one, or without a token, the X-User-ID header is used. Requests with no
// identity continue anonymously.
func Actor(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok && len(key) > 0 {
			claims, err := parseToken(token, key)
			if err != nil {
				log.Warn().Err(err).Str("path", c.FullPath()).Msg("[http][middleware] token rejected")
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			c.Set(ActorKey, claims.actor())
			c.Next()
			return
		}
		if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
			c.Set(ActorKey, id)
		}
		c.Next()
	}
}

// ActorFrom returns the actor id stored by Actor, or "" for anonymous requests.
func ActorFrom(c *gin.Context) string {
	return c.GetString(ActorKey)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func parseToken(raw string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.actor() == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func (c *Claims) actor() string {
	if id := strings.TrimSpace(c.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(c.Subject)
}
