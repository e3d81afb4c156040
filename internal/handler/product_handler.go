package handler

import (
	"net/http"

	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// メイン画面の在庫フォームに相当するAPI
type ProductHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewProductHandler(uc *usecase.InventoryUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 在庫ルートを登録（ログインゲートの内側）
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/search", h.search)
	g.POST("/products", h.add)
	g.PUT("/products/:name", h.update)
	g.DELETE("/products/:name", h.remove)
}

// 入力欄と同じく、quantityは文字列のまま受けてusecase側で解釈する
type productForm struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.RefreshList(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) search(c echo.Context) error {
	out, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) add(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddProduct(c.Request().Context(), form.Name, form.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("name"), form.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	out, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
