package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-stock/internal/application/analytics"
	"github.com/tu-usuario/inventario-stock/internal/application/auth"
	"github.com/tu-usuario/inventario-stock/internal/application/catalog"
	"github.com/tu-usuario/inventario-stock/internal/application/inventory"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventario-stock/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend en memoria para levantar la API completa sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memBackend struct {
	users      []*entity.User
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	records    map[string]*entity.InventoryRecord
	movements  []*entity.StockMovement
}

func newMemBackend() *memBackend {
	return &memBackend{
		categories: make(map[string]*entity.Category),
		products:   make(map[string]*entity.Product),
		records:    make(map[string]*entity.InventoryRecord),
	}
}

type memUserRepo struct{ b *memBackend }

func (r *memUserRepo) Create(u *entity.User) error { r.b.users = append(r.b.users, u); return nil }
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.b.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.b.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.b.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memCategoryRepo struct{ b *memBackend }

func (r *memCategoryRepo) Create(c *entity.Category) error { r.b.categories[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.b.categories[id], nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error {
	if _, ok := r.b.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.b.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.b.categories))
	for _, c := range r.b.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCategoryRepo) Delete(id string) error {
	if _, ok := r.b.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.b.categories, id)
	return nil
}
func (r *memCategoryRepo) Count() (int64, error) { return int64(len(r.b.categories)), nil }

type memProductRepo struct{ b *memBackend }

func (r *memProductRepo) Create(p *entity.Product) error { r.b.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.b.products[id], nil }
func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.b.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.b.products[p.ID] = p
	return nil
}
func (r *memProductRepo) List() ([]*entity.ProductWithCategory, error) {
	out := make([]*entity.ProductWithCategory, 0, len(r.b.products))
	for _, p := range r.b.products {
		out = append(out, &entity.ProductWithCategory{Product: *p})
	}
	return out, nil
}
func (r *memProductRepo) ListRefs() ([]*entity.ProductRef, error) {
	out := make([]*entity.ProductRef, 0, len(r.b.products))
	for _, p := range r.b.products {
		out = append(out, &entity.ProductRef{ID: p.ID, Name: p.Name, SKU: p.SKU})
	}
	return out, nil
}
func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.b.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.b.products, id)
	return nil
}
func (r *memProductRepo) Count() (int64, error) { return int64(len(r.b.products)), nil }

type memInventoryRepo struct{ b *memBackend }

func (r *memInventoryRepo) GetForUpdate(_ context.Context, productID string) (*entity.InventoryRecord, error) {
	return r.b.records[productID], nil
}
func (r *memInventoryRepo) Init(_ context.Context, rec *entity.InventoryRecord) error {
	if _, ok := r.b.records[rec.ProductID]; ok {
		return nil
	}
	cp := *rec
	r.b.records[rec.ProductID] = &cp
	return nil
}
func (r *memInventoryRepo) ApplyDelta(_ context.Context, productID string, delta int64) error {
	rec, ok := r.b.records[productID]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Quantity += delta
	return nil
}
func (r *memInventoryRepo) List(_ context.Context) ([]*entity.InventoryLevel, error) {
	out := make([]*entity.InventoryLevel, 0, len(r.b.records))
	for _, rec := range r.b.records {
		p := r.b.products[rec.ProductID]
		out = append(out, &entity.InventoryLevel{
			ID: rec.ID, ProductID: rec.ProductID, Quantity: rec.Quantity,
			ProductName: p.Name, SKU: p.SKU, MinimumStock: p.MinimumStock,
		})
	}
	return out, nil
}

type memMovementRepo struct{ b *memBackend }

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.b.movements = append(r.b.movements, m)
	return nil
}

type memTxRunner struct{ b *memBackend }

func (r *memTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(&memInventoryRepo{b: r.b}, &memMovementRepo{b: r.b})
}

type memDashboardRepo struct{ b *memBackend }

func (r *memDashboardRepo) LowStock(_ context.Context) ([]*repository.LowStockRow, error) {
	out := make([]*repository.LowStockRow, 0)
	for _, rec := range r.b.records {
		p := r.b.products[rec.ProductID]
		if rec.Quantity <= p.MinimumStock {
			out = append(out, &repository.LowStockRow{
				ProductID: p.ID, Name: p.Name, SKU: p.SKU,
				MinimumStock: p.MinimumStock, Quantity: rec.Quantity,
			})
		}
	}
	return out, nil
}
func (r *memDashboardRepo) TotalInventoryValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.b.records {
		p := r.b.products[rec.ProductID]
		total = total.Add(p.Price.Mul(decimal.NewFromInt(rec.Quantity)))
	}
	return total, nil
}
func (r *memDashboardRepo) CountProducts(_ context.Context) (int64, error) {
	return int64(len(r.b.products)), nil
}
func (r *memDashboardRepo) CountCategories(_ context.Context) (int64, error) {
	return int64(len(r.b.categories)), nil
}

// newTestAPI levanta la aplicación completa sobre el backend en memoria.
func newTestAPI() (*fiber.App, *memBackend) {
	b := newMemBackend()

	authUC := auth.NewAuthUseCase(&memUserRepo{b: b}, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	categoryUC := catalog.NewCategoryUseCase(&memCategoryRepo{b: b})
	productUC := catalog.NewProductUseCase(&memProductRepo{b: b})
	adjustUC := inventory.NewAdjustStockUseCase(&memTxRunner{b: b}, &memProductRepo{b: b}, &memInventoryRepo{b: b})
	dashboardUC := analytics.NewDashboardUseCase(&memDashboardRepo{b: b})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		AdjustStock: adjustUC,
		DashboardUC: dashboardUC,
		JWTSecret:   testJWTSecret,
	})
	return app, b
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin crea un usuario vía API y devuelve su token.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "maria", "password": "secreto123", "email": "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "maria", "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Register_Validacion(t *testing.T) {
	app, _ := newTestAPI()

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"username corto", fiber.Map{"username": "ab", "password": "secreto123", "email": "a@b.co"}},
		{"password corto", fiber.Map{"username": "maria", "password": "12345", "email": "a@b.co"}},
		{"email inválido", fiber.Map{"username": "maria", "password": "secreto123", "email": "no-es-email"}},
		{"campos faltantes", fiber.Map{"username": "maria"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/auth/register", "", tc.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAPI_Register_Duplicado_Retorna400(t *testing.T) {
	app, _ := newTestAPI()
	_ = registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "maria", "password": "otro-pass", "email": "otra@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestAPI_Login_CredencialesInvalidas_Retorna400(t *testing.T) {
	app, _ := newTestAPI()
	_ = registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "maria", "password": "incorrecto",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestAPI_RutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app, _ := newTestAPI()

	paths := []struct{ method, path string }{
		{http.MethodGet, "/categories"},
		{http.MethodGet, "/products"},
		{http.MethodGet, "/inventory"},
		{http.MethodGet, "/inventory/dashboard"},
		{http.MethodPost, "/inventory/update"},
	}
	for _, p := range paths {
		resp := doJSON(t, app, p.method, p.path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestAPI_Categorias_CRUD(t *testing.T) {
	app, _ := newTestAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/categories", token, fiber.Map{
		"name": "Ferretería", "description": "Tornillería",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["categoryId"].(string)
	require.NotEmpty(t, id)

	resp = doJSON(t, app, http.MethodPut, "/categories/"+id, token, fiber.Map{"name": "Herramientas"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/categories/no-existe", token, fiber.Map{"name": "X"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/categories/"+id, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/categories/"+id, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_AjusteDeStock_FlujoCompleto(t *testing.T) {
	app, b := newTestAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/products", token, fiber.Map{
		"name": "Tornillo M4", "sku": "TOR-M4", "price": "19.99", "minimumStock": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID, _ := decodeBody(t, resp)["productId"].(string)
	require.NotEmpty(t, productID)

	resp = doJSON(t, app, http.MethodPost, "/inventory/update", token, fiber.Map{
		"productId": productID, "quantity": 10, "type": "ADD",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(10), b.records[productID].Quantity)

	resp = doJSON(t, app, http.MethodPost, "/inventory/update", token, fiber.Map{
		"productId": productID, "quantity": 6, "type": "REMOVE",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(4), b.records[productID].Quantity)

	// Retirar más de lo disponible: 400 y la cantidad no cambia
	resp = doJSON(t, app, http.MethodPost, "/inventory/update", token, fiber.Map{
		"productId": productID, "quantity": 10, "type": "REMOVE",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeBody(t, resp)["code"])
	assert.Equal(t, int64(4), b.records[productID].Quantity)

	// El actor del movimiento es el usuario del token
	require.Len(t, b.movements, 2)
	assert.Equal(t, b.users[0].ID, b.movements[0].UserID)
}

func TestAPI_AjusteDeStock_Validacion(t *testing.T) {
	app, _ := newTestAPI()
	token := registerAndLogin(t, app)

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"tipo desconocido", fiber.Map{"productId": "p1", "quantity": 1, "type": "TRANSFER"}},
		{"cantidad negativa", fiber.Map{"productId": "p1", "quantity": -2, "type": "ADD"}},
		{"campos faltantes", fiber.Map{"quantity": 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/inventory/update", token, tc.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	resp := doJSON(t, app, http.MethodPost, "/inventory/update", token, fiber.Map{
		"productId": "no-existe", "quantity": 1, "type": "ADD",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Dashboard(t *testing.T) {
	app, _ := newTestAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/products", token, fiber.Map{
		"name": "Tornillo M4", "sku": "TOR-M4", "price": "10", "minimumStock": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID, _ := decodeBody(t, resp)["productId"].(string)

	resp = doJSON(t, app, http.MethodPost, "/inventory/update", token, fiber.Map{
		"productId": productID, "quantity": 3, "type": "ADD",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/inventory/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	lowStock, ok := body["lowStock"].([]any)
	require.True(t, ok, "lowStock debe ser un arreglo, no null")
	require.Len(t, lowStock, 1, "3 <= minimumStock 5 dispara la alerta")
	assert.EqualValues(t, 1, body["totalProducts"])
	assert.EqualValues(t, 0, body["totalCategories"])
}
