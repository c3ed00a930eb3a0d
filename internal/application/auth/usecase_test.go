package auth

import (
	"errors"
	"testing"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	items    []*entity.User
	emailErr error // falla simulada del store en GetByEmail
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range f.items {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.items = append(f.items, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	for _, u := range f.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) { return f.items, nil }

func (f *fakeUserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for _, u := range f.items {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

var testJWT = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "tienda-api-test"}

// Registro crea un CUSTOMER y el password queda hasheado con bcrypt.
func TestRegister_CreaCustomerConHash(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleCustomer), out.Role)

	stored, err := repo.GetByEmail("ana@tienda.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "nunca se guarda el password plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra", Email: "ana@tienda.com", Password: "secreto456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Si el store falla al consultar el email, el registro falla con ese error
// en lugar de tratar el email como libre.
func TestRegister_FalloDelStoreSePropaga(t *testing.T) {
	fallo := errors.New("conexión perdida")
	repo := &fakeUserRepo{emailErr: fallo}
	uc := NewUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	assert.ErrorIs(t, err, fallo)
	assert.Nil(t, out)
	assert.Empty(t, repo.items, "no se persiste nada cuando el store falla")
}

// Login correcto devuelve un token cuyo claim de rol coincide con el usuario.
func TestLogin_TokenConRol(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUseCase(repo, testJWT)
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "CUSTOMER", role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "otracosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un token cuyo sujeto ya no existe en la base no resuelve identidad.
func TestProfile_SujetoNoResoluble(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Profile("id-de-otro-entorno")
	assert.ErrorIs(t, err, domain.ErrIdentity)
}

func TestProfile_DevuelveProyeccionSinCredenciales(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUseCase(repo, testJWT)
	created, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@tienda.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Profile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@tienda.com", out.Email)
	assert.Equal(t, "CUSTOMER", out.Role)
}
