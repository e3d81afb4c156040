package validator

import (
	"errors"
	"strings"

	auth "inventory/internal/usecase/auth_usecase"
)

// どちらかの欄が空
var ErrEmptyField = errors.New("username and password cannot be empty")

type authValidator struct{}

// Usecaseはinterfaceを依存注入
func NewAuthValidator() auth.Validator {
	return &authValidator{}
}

// 登録の入力を検証
func (v *authValidator) ValidateRegister(username string, password string) error {
	return requireBoth(username, password)
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(username string, password string) error {
	return requireBoth(username, password)
}

// 必須チェック
func requireBoth(username string, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyField
	}
	return nil
}
