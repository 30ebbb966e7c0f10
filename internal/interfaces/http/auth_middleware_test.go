package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventasly/internal/application/auth"
	"github.com/tu-usuario/ventasly/internal/application/sales"
	"github.com/tu-usuario/ventasly/internal/application/users"
	"github.com/tu-usuario/ventasly/internal/domain"
	"github.com/tu-usuario/ventasly/internal/domain/entity"
	apphttp "github.com/tu-usuario/ventasly/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/ventasly/pkg/jwt"
	"github.com/tu-usuario/ventasly/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	f.sales[cp.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) ListByOwner(ownerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.UserID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeSaleRepo) GetByIDAndOwner(id, ownerID string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.UserID != ownerID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) Update(s *entity.Sale) error {
	cp := *s
	f.sales[cp.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) Delete(id, ownerID string) (bool, error) {
	s, ok := f.sales[id]
	if !ok || s.UserID != ownerID {
		return false, nil
	}
	delete(f.sales, id)
	return true, nil
}

type stubReport struct{}

func (stubReport) GenerateSalesReport(string, []*entity.Sale) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

type testEnv struct {
	app      *fiber.App
	userRepo *fakeUserRepo
	saleRepo *fakeSaleRepo
}

// buildTestApp monta la aplicación completa (router + use cases reales) sobre
// repositorios en memoria.
func buildTestApp() *testEnv {
	userRepo := newFakeUserRepo()
	saleRepo := newFakeSaleRepo()

	hasher := &password.BcryptHasher{Cost: 4}
	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpHours: 24, Issuer: "ventasly-test"}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(userRepo, hasher, jwtCfg),
		SaleUC:    sales.NewSaleUseCase(saleRepo, stubReport{}),
		UserUC:    users.NewUserUseCase(userRepo),
		Users:     userRepo,
		JWTSecret: testJWTSecret,
		DevMode:   true,
	})
	return &testEnv{app: app, userRepo: userRepo, saleRepo: saleRepo}
}

// doJSON lanza una petición con body JSON opcional y header Authorization opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser registra un usuario vía el endpoint real y devuelve (token, userID).
func registerUser(t *testing.T, env *testEnv, email, pw string) (string, string) {
	t.Helper()
	resp := doJSON(t, env.app, http.MethodPost, "/api/register", "", fiber.Map{
		"email": email, "password": pw,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	env := buildTestApp()
	resp := doJSON(t, env.app, http.MethodGet, "/api/sales", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	env := buildTestApp()
	resp := doJSON(t, env.app, http.MethodGet, "/api/sales", "token.invalido.aqui", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token vigente de un usuario que ya no existe no sirve: el middleware
// recarga el usuario desde el repositorio.
func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	env := buildTestApp()
	token, userID := registerUser(t, env, "a@x.com", "password1")

	delete(env.userRepo.users, userID)

	resp := doJSON(t, env.app, http.MethodGet, "/api/sales", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "usuario no encontrado", body["error"])
}

func TestAuthMiddleware_TokenValido_AdjuntaIdentidad(t *testing.T) {
	env := buildTestApp()
	token, userID := registerUser(t, env, "a@x.com", "password1")

	claims, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	resp := doJSON(t, env.app, http.MethodGet, "/api/sales", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_UsuarioNormalBloqueado(t *testing.T) {
	env := buildTestApp()
	token, _ := registerUser(t, env, "a@x.com", "password1")

	resp := doJSON(t, env.app, http.MethodGet, "/api/users", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "role=user no accede a rutas admin")
}

func TestRequireRole_AdminAccede(t *testing.T) {
	env := buildTestApp()
	token, userID := registerUser(t, env, "admin@x.com", "password1")

	// promover a admin directamente en el repositorio (lo haría un colaborador externo)
	env.userRepo.users[userID].Role = entity.RoleAdmin

	resp := doJSON(t, env.app, http.MethodGet, "/api/users", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
