package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
)

// spyUserRepo cuenta los accesos al store para verificar que los gates
// cortan la petición antes de cualquier consulta.
type spyUserRepo struct {
	calls int
	users []*entity.User
}

func (s *spyUserRepo) Create(u *entity.User) error { s.calls++; s.users = append(s.users, u); return nil }

func (s *spyUserRepo) GetByID(id string) (*entity.User, error) {
	s.calls++
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *spyUserRepo) GetByEmail(email string) (*entity.User, error) {
	s.calls++
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *spyUserRepo) List() ([]*entity.User, error) { s.calls++; return s.users, nil }

func (s *spyUserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	s.calls++
	out := make([]*entity.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func buildUsersApp(repo *spyUserRepo) *fiber.App {
	authUC := auth.NewUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(repo),
		AuthUC:    authUC,
		CatalogUC: &catalog.UseCase{},
		JWTSecret: testJWTSecret,
	})
	return app
}

// Sin credencial, /users/me responde 401 sin tocar el store.
func TestUsersMe_SinToken_NoTocaElStore(t *testing.T) {
	repo := &spyUserRepo{}
	app := buildUsersApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, repo.calls, "el gate debe cortar antes de cualquier acceso al store")
}

// Token válido pero el sujeto ya no existe: identidad no resoluble, 401.
func TestUsersMe_SujetoNoResoluble_Retorna401(t *testing.T) {
	repo := &spyUserRepo{}
	app := buildUsersApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "CUSTOMER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// CUSTOMER en el listado de usuarios (solo ADMIN): 403, sin consulta al store.
func TestUsersList_CustomerProhibido_NoTocaElStore(t *testing.T) {
	repo := &spyUserRepo{}
	app := buildUsersApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/?role=CUSTOMER", nil)
	req.Header.Set("Authorization", tokenForRole(t, "CUSTOMER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, repo.calls, "el RBAC debe cortar antes del servicio")
}

// ADMIN sí obtiene el listado.
func TestUsersList_AdminAutorizado(t *testing.T) {
	repo := &spyUserRepo{users: []*entity.User{
		{ID: "u1", Name: "Ana", Email: "ana@tienda.com", Role: entity.RoleAdmin},
	}}
	app := buildUsersApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	req.Header.Set("Authorization", tokenForRole(t, "ADMIN"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
