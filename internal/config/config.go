package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port        string // サーバーポート（8080）
	InventoryDB string // 在庫DBファイル（inventory.db）
	UsersFile   string // 資格情報ファイル（users.csv）
	ExportFile  string // エクスポート先のデフォルト（inventory_report.csv）
}

// Loadは環境変数から設定を読む。単体で動くツールなので全項目にデフォルトがある。
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		InventoryDB: getenv("INVENTORY_DB", "inventory.db"),
		UsersFile:   getenv("USERS_FILE", "users.csv"),
		ExportFile:  getenv("EXPORT_FILE", "inventory_report.csv"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
