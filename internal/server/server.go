package server

import (
	"inventory/internal/handler"
	"inventory/internal/middleware"
	"inventory/internal/obs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Newは組み立て済みの*echo.Echoを返す。テストからも使う。
func New(
	log zerolog.Logger,
	gate *middleware.LoginGate,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	exportH *handler.ExportHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(obs.RequestLogger(log))
	e.Use(echomw.Recover())

	RegisterRoutes(e, gate, authH, productH, exportH)
	return e
}

// StartはHTTPサーバを起動する。
func Start(
	addr string,
	log zerolog.Logger,
	gate *middleware.LoginGate,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	exportH *handler.ExportHandler,
) error {
	return New(log, gate, authH, productH, exportH).Start(addr)
}
