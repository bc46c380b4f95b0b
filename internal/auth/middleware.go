package auth

import (
	"net/http"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// ContextUserKey is the echo context key holding the resolved user.
const ContextUserKey = "current_user"

// Guard returns the middleware chain for bearer-protected routes:
// token verification followed by resolution of the subject to an
// active user. Any failure along the chain is a uniform 401.
func Guard(tokens *TokenService, users repository.UserRepository) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return tokens.ValidateToken(raw)
		},
		// Missing and malformed tokens must look the same as invalid
		// ones: a bare 401 with a bearer challenge.
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized(c)
		},
	})
	return []echo.MiddlewareFunc{verify, resolveUser(users)}
}

// resolveUser maps the verified token's subject to a user record. A
// numeric subject is looked up by id first; on a miss (or a
// non-numeric subject) the lookup falls back to email. Inactive users
// are rejected.
func resolveUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok || claims.Subject == "" {
				return unauthorized(c)
			}

			ctx := c.Request().Context()
			var user *model.User
			if id, err := strconv.ParseUint(claims.Subject, 10, 64); err == nil {
				user, _ = users.FindByID(ctx, uint(id))
			}
			if user == nil {
				user, _ = users.FindByEmail(ctx, claims.Subject)
			}
			if user == nil || !user.IsActive {
				return unauthorized(c)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by the guard, or nil on
// unguarded routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}
