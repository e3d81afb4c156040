package auth

import (
	"context"
	"strings"

	"inventory/internal/repository"
)

// LoginUsecaseはログインの処理。
// 成功してもトークンやセッションは作らない。在庫画面を開く合図になるだけ。
type LoginUsecase struct {
	credRepo  repository.CredentialRepository
	validator Validator
}

// DI
func NewLoginUsecase(credRepo repository.CredentialRepository, v Validator) *LoginUsecase {
	return &LoginUsecase{
		credRepo:  credRepo,
		validator: v,
	}
}

// ログイン実行。ファイル先頭から走査して最初の完全一致で成功する。
// 失敗はrepository.ErrInvalidCredentials、ファイル未作成はrepository.ErrStoreUnavailable。
func (u *LoginUsecase) Execute(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := u.validator.ValidateLogin(username, password); err != nil {
		return err
	}

	return u.credRepo.Match(ctx, username, password)
}
