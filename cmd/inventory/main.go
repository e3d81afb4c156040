package main

import (
	"inventory/internal/config"
	"inventory/internal/handler"
	"inventory/internal/infra/db"
	infraRepo "inventory/internal/infra/repository"
	"inventory/internal/middleware"
	"inventory/internal/obs"
	"inventory/internal/server"
	"inventory/internal/usecase"
	auth "inventory/internal/usecase/auth_usecase"
	"inventory/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	log := obs.NewLogger()

	// .envは任意。無ければデフォルト設定で動く
	_ = godotenv.Load()
	cfg := config.Load()

	//DB接続（ファイルが無ければ作られる）
	gormDB, err := db.Connect(cfg.InventoryDB)
	if err != nil {
		log.Fatal().Err(err).Msg("open inventory db")
	}

	//Repository生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	if err := productRepo.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("migrate inventory table")
	}
	credRepo := infraRepo.NewCredentialCSVRepository(cfg.UsersFile)

	//Usecase生成
	v := validator.NewAuthValidator()
	registerUC := auth.NewRegisterUsecase(credRepo, v)
	loginUC := auth.NewLoginUsecase(credRepo, v)
	inventoryUC := usecase.NewInventoryUsecase(productRepo)
	exportUC := usecase.NewExportUsecase(productRepo)

	//ログインゲート（ログイン成功が在庫画面への唯一の入口）
	gate := middleware.NewLoginGate()

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, gate)
	productH := handler.NewProductHandler(inventoryUC)
	exportH := handler.NewExportHandler(exportUC, cfg.ExportFile)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info().
		Str("addr", addr).
		Str("db", cfg.InventoryDB).
		Str("users", cfg.UsersFile).
		Msg("inventory tracker started")

	if err := server.Start(addr, log, gate, authH, productH, exportH); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
