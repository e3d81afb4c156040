package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
)

// 対象行なし
var ErrNotFound = errors.New("not found")

// product_nameの一意制約に抵触
var ErrDuplicateName = errors.New("duplicate name")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 新規行を作成。idは自動採番。
	Insert(ctx context.Context, name string, quantity int64) (model.Product, error)
	// nameで特定した1行のquantityを上書き。
	SetQuantity(ctx context.Context, name string, quantity int64) error
	// nameで特定した1行を削除。
	Delete(ctx context.Context, name string) error
	// nameの部分一致検索。空文字は全件に一致する。
	FindByNameContains(ctx context.Context, substr string) ([]model.Product, error)
	// 全件。並びは挿入順のまま。
	ListAll(ctx context.Context) ([]model.Product, error)
}
