package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory/internal/handler"
	"inventory/internal/infra/db"
	infrarepo "inventory/internal/infra/repository"
	"inventory/internal/middleware"
	"inventory/internal/server"
	"inventory/internal/usecase"
	auth "inventory/internal/usecase/auth_usecase"
	"inventory/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// ログイン画面→メイン画面の流れを丸ごと組み立てる
func newTestServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	dir := t.TempDir()

	gormDB, err := db.Connect(filepath.Join(dir, "inventory.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	productRepo := infrarepo.NewProductGormRepository(gormDB)
	if err := productRepo.EnsureSchema(); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	credRepo := infrarepo.NewCredentialCSVRepository(filepath.Join(dir, "users.csv"))

	v := validator.NewAuthValidator()
	gate := middleware.NewLoginGate()

	authH := handler.NewAuthHandler(
		auth.NewRegisterUsecase(credRepo, v),
		auth.NewLoginUsecase(credRepo, v),
		gate,
	)
	productH := handler.NewProductHandler(usecase.NewInventoryUsecase(productRepo))
	exportH := handler.NewExportHandler(usecase.NewExportUsecase(productRepo), filepath.Join(dir, "inventory_report.csv"))

	return server.New(zerolog.Nop(), gate, authH, productH, exportH), dir
}

func doJSON(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bodyField(t *testing.T, rec *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad json %q: %v", rec.Body.String(), err)
	}
	s, _ := m[key].(string)
	return s
}

func TestServer_LoginGateBlocksInventoryRoutes(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/export", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_LoginBeforeAnyRegistration(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No users found. Please register first.", bodyField(t, rec, "error"))
}

func TestServer_FullFlow(t *testing.T) {
	e, dir := newTestServer(t)

	// 登録
	rec := doJSON(e, http.MethodPost, "/auth/register", `{"username":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registration successful.", bodyField(t, rec, "message"))

	// 間違ったパスワード
	rec = doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials.", bodyField(t, rec, "error"))

	// ログイン成功でゲートが開く
	rec = doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// 追加
	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Widget","quantity":"5"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product 'Widget' added.", bodyField(t, rec, "message"))

	// 重複
	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Widget","quantity":"7"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Product already exists.", bodyField(t, rec, "error"))

	// 数量が数字でない
	rec = doJSON(e, http.MethodPost, "/products", `{"name":"X","quantity":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity must be a number", bodyField(t, rec, "error"))

	// 残りを追加
	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Gadget","quantity":"2"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Gizmo","quantity":"1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// 更新
	rec = doJSON(e, http.MethodPut, "/products/Widget", `{"quantity":"9"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product 'Widget' updated to 9 units.", bodyField(t, rec, "message"))

	// 存在しない商品の更新
	rec = doJSON(e, http.MethodPut, "/products/Ghost", `{"quantity":"9"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product 'Ghost' not found.", bodyField(t, rec, "error"))

	// 検索（"i" はWidgetとGizmoに含まれる）
	rec = doJSON(e, http.MethodGet, "/products/search?q=i", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var search struct {
		Items []struct {
			Name     string `json:"name"`
			Quantity int64  `json:"quantity"`
		} `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &search))
	names := make([]string, 0, len(search.Items))
	for _, it := range search.Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Widget", "Gizmo"}, names)

	// エクスポート（ヘッダ1行＋3行）
	rec = doJSON(e, http.MethodPost, "/export", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	reportPath := filepath.Join(dir, "inventory_report.csv")
	data, err := os.ReadFile(reportPath)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "Product ID,Product Name,Quantity", lines[0])
	assert.Equal(t, fmt.Sprintf("Inventory data exported to %s", reportPath), bodyField(t, rec, "message"))

	// 削除して一覧から消える
	rec = doJSON(e, http.MethodDelete, "/products/Widget", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product 'Widget' deleted.", bodyField(t, rec, "message"))

	rec = doJSON(e, http.MethodDelete, "/products/Widget", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &search))
	assert.Equal(t, 2, len(search.Items))
}

func TestServer_RegisterEmptyFields(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"username":"","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password cannot be empty.", bodyField(t, rec, "error"))
}
