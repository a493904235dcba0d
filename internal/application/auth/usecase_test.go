package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	pkgjwt "github.com/ilogush/backoffice-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

var testCfg = JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "backoffice-api-test"}

func TestRegisterUser_CreaConRolPorDefecto(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@tienda.co", Password: "clave123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana@tienda.co", out.Email)
	assert.Equal(t, entity.RoleVendedor, out.Role, "sin rol explícito debe asignarse vendedor")
	assert.Equal(t, "active", out.Status)
}

func TestRegisterUser_EmailDuplicadoRetornaConflicto(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@tienda.co", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@tienda.co", Password: "otraclave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolDesconocidoEsInvalido(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@tienda.co", Password: "clave123", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_SinEmailOPasswordEsInvalido(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "x@tienda.co", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectasRetornaToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testCfg)

	created, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@tienda.co", Password: "clave123", Role: entity.RoleBodeguero,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	// El token debe llevar el userID y el rol para el middleware RBAC.
	userID, role, err := pkgjwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_PasswordIncorrectoRetornaUnauthorized(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@tienda.co", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistenteRetornaUserNotFound(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.co", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoRetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@tienda.co", Password: "clave123"})
	require.NoError(t, err)

	repo.byEmail["ana@tienda.co"].Status = "disabled"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.co", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
