// Package obs は観測まわり（ロギング）をまとめる。
package obs

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewLoggerはコンソール向けのzerologロガーを返す。
func NewLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger()
}

// RequestLoggerは1リクエスト1行のアクセスログを出すechoミドルウェア。
// 操作単位のエラーはレスポンスで利用者に返すだけで、ここでは行として残すのみ。
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log.Info().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return err
		}
	}
}
