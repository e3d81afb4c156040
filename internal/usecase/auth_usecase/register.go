package auth

import (
	"context"
	"strings"

	"inventory/internal/domain/model"
	"inventory/internal/repository"
)

// 入力検証の約束（実装はvalidatorパッケージ）
type Validator interface {
	ValidateRegister(username string, password string) error
	ValidateLogin(username string, password string) error
}

// RegisterUsecaseはユーザー登録の処理。
type RegisterUsecase struct {
	credRepo  repository.CredentialRepository
	validator Validator
}

// DI
func NewRegisterUsecase(credRepo repository.CredentialRepository, v Validator) *RegisterUsecase {
	return &RegisterUsecase{
		credRepo:  credRepo,
		validator: v,
	}
}

// 登録実行。重複チェックはしない（同名ユーザーの再登録も黙って追記される）。
func (u *RegisterUsecase) Execute(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := u.validator.ValidateRegister(username, password); err != nil {
		return err
	}

	return u.credRepo.Append(ctx, model.Credential{
		Username: username,
		Password: password, // 平文のまま保存（元システムの挙動を保持）
	})
}
