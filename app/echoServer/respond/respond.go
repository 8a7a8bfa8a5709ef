// Package respond writes the uniform response envelope:
// {status, success, message, data}.
package respond

import "github.com/labstack/echo/v4"

type Envelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Status: status, Success: true, Message: message, Data: data})
}

func Err(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Status: status, Success: false, Message: message})
}
