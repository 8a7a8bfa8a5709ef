// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// UserIDFromContext reads the user id the auth middleware extracted from
// the verified token.
func UserIDFromContext(c echo.Context) (int64, error) {
	id, ok := c.Get("user_id").(int64)
	if !ok || id == 0 {
		return 0, errors.New("no user id in context")
	}
	return id, nil
}
