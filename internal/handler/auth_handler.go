package handler

import (
	"errors"
	"fmt"
	"net/http"

	"inventory/internal/middleware"
	"inventory/internal/repository"
	auth "inventory/internal/usecase/auth_usecase"
	"inventory/internal/validator"

	"github.com/labstack/echo/v4"
)

// ログイン画面に相当するAPI
type AuthHandler struct {
	registerUC *auth.RegisterUsecase
	loginUC    *auth.LoginUsecase
	gate       *middleware.LoginGate
}

// DI
func NewAuthHandler(registerUC *auth.RegisterUsecase, loginUC *auth.LoginUsecase, gate *middleware.LoginGate) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		gate:       gate,
	}
}

// 認証ルートを登録（ゲートの外側。登録はログイン前から押せる）
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
}

type authForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var form authForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.registerUC.Execute(c.Request().Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, validator.ErrEmptyField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password cannot be empty."})
	case err != nil:
		// 登録時のその他の失敗は内容をそのまま返す（元システムの挙動）
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("An error occurred: %v", err)})
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Registration successful."})
}

func (h *AuthHandler) login(c echo.Context) error {
	var form authForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.loginUC.Execute(c.Request().Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, validator.ErrEmptyField):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password cannot be empty."})
	case errors.Is(err, repository.ErrStoreUnavailable):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No users found. Please register first."})
	case errors.Is(err, repository.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials."})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	// ログイン成功で在庫ルートが開く
	h.gate.Unlock()
	return c.JSON(http.StatusOK, MessageResponse{Message: "Login successful."})
}
