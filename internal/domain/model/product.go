package model

// Productは在庫の1行。product_nameが業務キーで全体で一意。
type Product struct {
	ID       int64  `gorm:"column:product_id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:product_name;type:text;not null;unique" json:"name"`
	Quantity int64  `gorm:"column:quantity;not null" json:"quantity"`
}

// TableNameは既存のinventoryテーブル名に合わせる。
func (Product) TableName() string {
	return "inventory"
}
