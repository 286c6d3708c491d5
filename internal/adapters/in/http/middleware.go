package http

import (
	"net/http"
	"strings"

	"shiprelay/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// BearerAuth returns middleware that requires a valid session token minted by
// the login endpoint. The authenticated username is stored in the echo context
// under "username".
func BearerAuth(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			username, err := signer.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set("username", username)
			return next(ctx)
		}
	}
}
