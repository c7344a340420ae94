package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/commands"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

const principalContextKey = "principal"

// Principal is the authenticated caller extracted from a verified JWT.
// The role always comes from the token claims, never from the request body.
type Principal struct {
	ID   kernel.UUID
	Role kernel.Role
}

// Actor converts the principal into a command actor.
func (p Principal) Actor() (commands.Actor, error) {
	return commands.NewActor(p.ID, p.Role)
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer JWT on every request and stores the
// resulting Principal in the echo context. Requests without a valid token
// are rejected with 401 before reaching a handler.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFromHeader(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// principalFrom retrieves the authenticated principal stored by the middleware.
func principalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}

func principalFromHeader(header, secret string) (Principal, error) {
	if header == "" {
		return Principal{}, errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errors.New("invalid authorization header")
	}

	return parseToken(strings.TrimSpace(parts[1]), secret)
}

func parseToken(tokenStr, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	claims, _ := tok.Claims.(*tokenClaims)
	if claims == nil || claims.Subject == "" || claims.Role == "" {
		return Principal{}, errors.New("invalid claims")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errors.New("invalid subject claim")
	}

	role, err := kernel.RoleFromString(strings.ToLower(claims.Role))
	if err != nil {
		return Principal{}, errors.New("invalid role claim")
	}

	return Principal{ID: id, Role: role}, nil
}

// MintToken issues an HS256 token for the given identity. Used by tests and
// local tooling; production tokens come from the identity service.
func MintToken(secret string, id kernel.UUID, role kernel.Role, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
