package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// フォーム入力の検証とCRUDの振り分け。UIへの参照は一切持たない。
type InventoryUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewInventoryUsecase(productRepo repo.ProductRepository) *InventoryUsecase {
	return &InventoryUsecase{productRepo: productRepo}
}

// 変更系の出力。UI側はItemsで表示を差し替え、入力欄をクリアし、Messageを通知する。
type InventoryOutput struct {
	Message string          `json:"message"`
	Items   []model.Product `json:"items"`
}

// 一覧・検索の出力。表示は全置換（マージはしない）。
type ProductListOutput struct {
	Items []model.Product `json:"items"`
}

// 商品の追加。nameはトリムして必須、quantityは整数のみ（符号・範囲の制限はしない）。
func (u *InventoryUsecase) AddProduct(ctx context.Context, name string, quantityText string) (InventoryOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return InventoryOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	qty, err := parseQuantity(quantityText)
	if err != nil {
		return InventoryOutput{}, err
	}

	p, err := u.productRepo.Insert(ctx, name, qty)
	if errors.Is(err, repo.ErrDuplicateName) {
		return InventoryOutput{}, NewHTTPError(http.StatusConflict, "Product already exists.")
	}
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InventoryOutput{
		Message: fmt.Sprintf("Product '%s' added.", p.Name),
		Items:   items,
	}, nil
}

// 数量の更新。nameの空チェックは意図的にしない（ストアが0件更新でnot foundを返す）。
func (u *InventoryUsecase) UpdateProduct(ctx context.Context, name string, quantityText string) (InventoryOutput, error) {
	name = strings.TrimSpace(name)

	qty, err := parseQuantity(quantityText)
	if err != nil {
		return InventoryOutput{}, err
	}

	err = u.productRepo.SetQuantity(ctx, name, qty)
	if errors.Is(err, repo.ErrNotFound) {
		return InventoryOutput{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product '%s' not found.", name))
	}
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InventoryOutput{
		Message: fmt.Sprintf("Product '%s' updated to %d units.", name, qty),
		Items:   items,
	}, nil
}

// 商品の削除。こちらもnameの空チェックはしない。
func (u *InventoryUsecase) DeleteProduct(ctx context.Context, name string) (InventoryOutput, error) {
	name = strings.TrimSpace(name)

	err := u.productRepo.Delete(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return InventoryOutput{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product '%s' not found.", name))
	}
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return InventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return InventoryOutput{
		Message: fmt.Sprintf("Product '%s' deleted.", name),
		Items:   items,
	}, nil
}

// 部分一致検索。空クエリは全件。
func (u *InventoryUsecase) SearchProducts(ctx context.Context, query string) (ProductListOutput, error) {
	items, err := u.productRepo.FindByNameContains(ctx, strings.TrimSpace(query))
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items}, nil
}

// 一覧の取り直し。
func (u *InventoryUsecase) RefreshList(ctx context.Context) (ProductListOutput, error) {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items}, nil
}

// 数量欄のテキストを整数として解釈する。負数は許す。
func parseQuantity(text string) (int64, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "quantity must be a number")
	}
	return qty, nil
}
