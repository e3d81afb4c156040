package server

import (
	"inventory/internal/handler"
	"inventory/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ログイン画面の外側と、ログイン後のメイン画面に相当する内側でルートを分ける。
func RegisterRoutes(
	e *echo.Echo,
	gate *middleware.LoginGate,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	exportH *handler.ExportHandler,
) {
	authH.RegisterRoutes(e)

	g := e.Group("", gate.Require())
	productH.RegisterRoutes(g)
	exportH.RegisterRoutes(g)
}
