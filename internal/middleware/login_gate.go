package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
)

// LoginGateは在庫画面への唯一の入口。
// ログイン成功をプロセス内で1回だけ覚える。トークン・セッション・期限は持たない。
type LoginGate struct {
	mu       sync.Mutex
	loggedIn bool
}

// DI
func NewLoginGate() *LoginGate {
	return &LoginGate{}
}

// Unlockはログイン成功時に呼ぶ。
func (g *LoginGate) Unlock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loggedIn = true
}

// Unlockedは現在の状態を返す。
func (g *LoginGate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loggedIn
}

// Requireはログイン前のアクセスを401で止めるミドルウェア。
func (g *LoginGate) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g.Unlocked() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			return next(c)
		}
	}
}
