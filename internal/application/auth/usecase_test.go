package auth_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventasly/internal/application/auth"
	"github.com/tu-usuario/ventasly/internal/application/dto"
	"github.com/tu-usuario/ventasly/internal/domain"
	"github.com/tu-usuario/ventasly/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/ventasly/pkg/jwt"
	"github.com/tu-usuario/ventasly/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users   map[string]*entity.User // por ID
	creates int
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
	f.creates++
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

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	// bcrypt con costo mínimo para que los tests no tarden
	hasher := &password.BcryptHasher{Cost: 4}
	return auth.NewAuthUseCase(repo, hasher, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "ventasly-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConTokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "a@x.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.False(t, out.User.HasPaid)
	assert.NotEmpty(t, out.User.ID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.False(t, claims.HasPaid)
}

func TestRegister_NuncaPersisteElPasswordEnPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	stored, err := repo.GetByID(out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "password1")
}

func TestRegister_EmailDuplicado_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	first, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "otra-clave9"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// el registro existente queda intacto y no se creó ninguno nuevo
	assert.Equal(t, 1, repo.creates)
	stored, _ := repo.GetByID(first.User.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "a@x.com", stored.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	reg, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

// Email desconocido y password incorrecto deben fallar con el MISMO error para
// no permitir enumerar usuarios.
func TestLogin_ErroresIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "x@x.com", Password: "pw1pw1pw1"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "x@x.com", Password: "wrong"})
	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nonexistent@x.com", Password: "anything"})

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass, errNoUser)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
}
