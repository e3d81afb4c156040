package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"
)

// users.csv（ヘッダなし2列）をそのまま読み書きするリポジトリ。
type CredentialCSVRepository struct {
	path string
}

// DI
func NewCredentialCSVRepository(path string) *CredentialCSVRepository {
	return &CredentialCSVRepository{path: path}
}

// 末尾に1行追記する。重複チェックはしない（元システムの挙動）。
func (r *CredentialCSVRepository) Append(ctx context.Context, c model.Credential) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{c.Username, c.Password}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// 先頭から走査して最初の完全一致で成功。
// ファイルが無いのは「未登録」扱いでErrStoreUnavailableに分ける。
func (r *CredentialCSVRepository) Match(ctx context.Context, username string, password string) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repo.ErrStoreUnavailable
		}
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) >= 2 && row[0] == username && row[1] == password {
			return nil
		}
	}

	return repo.ErrInvalidCredentials
}
