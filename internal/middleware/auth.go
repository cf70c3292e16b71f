package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	TokenHeader = "X-Token"
	KeyHeader   = "X-Key"

	// PrincipalKey is set on the echo context once X-Key checked out.
	PrincipalKey = "principal"

	keyHolder = "key-holder"
)

// AuthMiddleware checks the shared demo secrets sent in X-Token and X-Key.
//
// VerifyToken and VerifyKey have the dependable shape (echo.Context in,
// value and error out) so routes and groups can declare them as dependencies.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// VerifyToken fails with 400 unless X-Token matches auth.token.
func (auth *AuthMiddleware) VerifyToken(c echo.Context) (string, error) {
	return auth.verify(c, TokenHeader, auth.server.Config.Auth.Token)
}

// VerifyKey fails with 400 unless X-Key matches auth.secret_key. It returns the key
// and marks the request as coming from a key holder, which the request
// logger and tracing pick up.
func (auth *AuthMiddleware) VerifyKey(c echo.Context) (string, error) {
	key, err := auth.verify(c, KeyHeader, auth.server.Config.Auth.SecretKey)
	if err != nil {
		return "", err
	}

	c.Set(PrincipalKey, keyHolder)

	GetLogger(c).Debug().
		Str("function", "VerifyKey").
		Str("request_id", GetRequestID(c)).
		Msg("request authenticated with shared key")

	return key, nil
}

func (auth *AuthMiddleware) verify(c echo.Context, header, expected string) (string, error) {
	start := time.Now()
	got := c.Request().Header.Get(header)

	if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
		GetLogger(c).Warn().
			Str("function", "verify").
			Str("header", header).
			Bool("present", got != "").
			Dur("duration", time.Since(start)).
			Msg("header check failed")

		return "", errs.NewBadRequestError(header+" header invalid", true, nil, []errs.FieldError{{
			Field: header,
			Error: "invalid value",
		}})
	}

	return got, nil
}
