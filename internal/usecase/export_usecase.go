package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strconv"

	repo "inventory/internal/repository"
)

// 在庫テーブル全件のCSV書き出し。
type ExportUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewExportUsecase(productRepo repo.ProductRepository) *ExportUsecase {
	return &ExportUsecase{productRepo: productRepo}
}

type ExportOutput struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
}

// 固定3列ヘッダ＋ListAll順の全行を書く。既存ファイルは無条件に上書き。
func (u *ExportUsecase) ExportAll(ctx context.Context, path string) (ExportOutput, error) {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	f, err := os.Create(path)
	if err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export failed")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Product ID", "Product Name", "Quantity"}); err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export failed")
	}
	for _, p := range items {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.FormatInt(p.Quantity, 10),
		}
		if err := w.Write(row); err != nil {
			return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export failed")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export failed")
	}

	return ExportOutput{
		Message: fmt.Sprintf("Inventory data exported to %s", path),
		Path:    path,
		Rows:    len(items),
	}, nil
}
