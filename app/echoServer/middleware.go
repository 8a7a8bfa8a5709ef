// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"carrental/app/echoServer/respond"
	"carrental/model"
	userrepo "carrental/repository/user"
	"carrental/util/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(middleware.CORS())

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// TokenGate verifies the bearer token and stores its identity claims on
// the context. Verification is stateless: no session store, no
// revocation. A token stays valid until natural expiry.
func TokenGate(secret string) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		NewClaimsFunc: func(c echo.Context) gojwt.Claims { return &jwt.Claims{} },
		ErrorHandler: func(c echo.Context, err error) error {
			return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
		},
	})

	extract := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := c.Get("user").(*gojwt.Token)
			if !ok || tok == nil {
				return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
			}
			claims, ok := tok.Claims.(*jwt.Claims)
			if !ok || claims.UserID == 0 {
				return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
			}
			c.Set("user_id", claims.UserID)
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{verify, extract}
}

// RequireRole resolves the token's user against the store and rejects
// the request unless the user's role is in the allow-list. Runs after
// TokenGate. A valid token whose user row is gone is also forbidden.
func RequireRole(ur userrepo.Repo, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("user_id").(int64)
			if !ok {
				return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
			}
			u, err := ur.ByID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return respond.Err(c, http.StatusForbidden, "permission denied")
				}
				return respond.Err(c, http.StatusInternalServerError, "internal server error")
			}
			if u == nil {
				return respond.Err(c, http.StatusForbidden, "permission denied")
			}
			for _, role := range roles {
				if u.Role == role {
					return next(c)
				}
			}
			return respond.Err(c, http.StatusForbidden, "permission denied for "+string(u.Role)+" role")
		}
	}
}
