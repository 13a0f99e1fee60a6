package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-stock/internal/application/auth"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/internal/domain"
	"github.com/tu-usuario/inventario-stock/internal/domain/entity"
	"github.com/tu-usuario/inventario-stock/pkg/jwt"
)

// fakeUserRepo repo de usuarios en memoria.
type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "inventario-stock-test",
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secreto123",
	}
}

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	resp, err := uc.Register(registerReq())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, "maria@example.com", resp.Email)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_UsernameDuplicado_RetornaConflict(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Email = "otra@example.com"
	_, err = uc.Register(dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.users, 1, "el duplicado no debe crear otra fila")
}

func TestRegister_EmailDuplicado_RetornaConflict(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Username = "otro-usuario"
	_, err = uc.Register(dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.users, 1)
}

func TestLogin_CredencialesValidas_RetornaTokenYUsuario(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	created, err := uc.Register(registerReq())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created.UserID, resp.User.UserID)

	// El token debe portar el id del usuario autenticado
	userID, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, userID)
}

// Usuario inexistente y password incorrecto producen el mismo error,
// para no revelar qué usuarios existen.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecto"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPass)
}
