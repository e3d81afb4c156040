package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
)

// 資格情報ファイルがまだ無い（先に登録が必要）
var ErrStoreUnavailable = errors.New("credential store unavailable")

// 一致する行が無い
var ErrInvalidCredentials = errors.New("invalid credentials")

// 資格情報ファイルへの追記と照合だけを約束。更新・削除はこのシステムでは行わない。
type CredentialRepository interface {
	// 末尾に1行追記する。重複チェックはしない。
	Append(ctx context.Context, c model.Credential) error
	// 先頭から走査し、最初に両方一致した行で成功する。
	Match(ctx context.Context, username string, password string) error
}
