package repository

import (
	"context"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// inventoryテーブルが無ければ作る。毎起動で呼んでも安全。
func (r *ProductGormRepository) EnsureSchema() error {
	return r.db.AutoMigrate(&model.Product{})
}

// 商品の追加。product_name重複はErrDuplicateName。
func (r *ProductGormRepository) Insert(ctx context.Context, name string, quantity int64) (model.Product, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_name = ?", name).
		Count(&count).Error; err != nil {
		return model.Product{}, err
	}
	if count > 0 {
		return model.Product{}, repo.ErrDuplicateName
	}

	p := model.Product{Name: name, Quantity: quantity}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 数量の上書き。0件更新は「対象がない」。
func (r *ProductGormRepository) SetQuantity(ctx context.Context, name string, quantity int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_name = ?", name).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品の削除。0件は「対象がない」。
func (r *ProductGormRepository) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).
		Where("product_name = ?", name).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// product_nameの部分一致検索。照合はsqliteのLIKE既定（ASCIIは大文字小文字を区別しない）。
func (r *ProductGormRepository) FindByNameContains(ctx context.Context, substr string) ([]model.Product, error) {
	var products []model.Product

	like := "%" + substr + "%"
	if err := r.db.WithContext(ctx).
		Where("product_name LIKE ?", like).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// 全件。明示ソートはせず挿入順のまま返す。
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
