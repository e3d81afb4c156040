package handler

import (
	"net/http"
	"strings"

	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エクスポートボタンに相当するAPI
type ExportHandler struct {
	uc          *usecase.ExportUsecase
	defaultPath string
}

// DI
func NewExportHandler(uc *usecase.ExportUsecase, defaultPath string) *ExportHandler {
	return &ExportHandler{
		uc:          uc,
		defaultPath: defaultPath,
	}
}

// エクスポートルートを登録（ゲートの内側）
func (h *ExportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/export", h.export)
}

type exportForm struct {
	Path string `json:"path"`
}

func (h *ExportHandler) export(c echo.Context) error {
	var form exportForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	path := strings.TrimSpace(form.Path)
	if path == "" {
		path = h.defaultPath
	}

	out, err := h.uc.ExportAll(c.Request().Context(), path)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
