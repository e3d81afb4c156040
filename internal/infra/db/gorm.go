package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connectは在庫DBファイルを開いて *gorm.DB を返す。ファイルが無ければ作られる。
func Connect(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
