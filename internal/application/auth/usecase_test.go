package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrgRepo struct {
	orgs   map[int64]*entity.Organization
	nextID int64
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[int64]*entity.Organization), nextID: 1}
}

func (r *fakeOrgRepo) Create(org *entity.Organization) error {
	org.ID = r.nextID
	r.nextID++
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrgRepo) GetByID(id int64) (*entity.Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, nil
	}
	return org, nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// fakeSignupTxRunner ejecuta el callback directo contra los fakes (los tests
// no necesitan rollback real aquí).
type fakeSignupTxRunner struct {
	orgRepo  *fakeOrgRepo
	userRepo *fakeUserRepo
}

func (tx *fakeSignupTxRunner) RunSignup(_ context.Context, fn func(
	repository.OrganizationRepository,
	repository.UserRepository,
) error) error {
	return fn(tx.orgRepo, tx.userRepo)
}

const testSecret = "unit-test-secret"

func buildAuthUseCase() (*auth.AuthUseCase, *fakeOrgRepo, *fakeUserRepo) {
	orgRepo := newFakeOrgRepo()
	userRepo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(userRepo, &fakeSignupTxRunner{orgRepo: orgRepo, userRepo: userRepo}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "crm-pro-test",
	})
	return uc, orgRepo, userRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaOrganizacionYPrimerUsuarioAdmin(t *testing.T) {
	uc, orgRepo, userRepo := buildAuthUseCase()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "Demo Organization",
		Name:             "Admin User",
		Email:            "admin@crm.com",
		Password:         "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, resp.User.Role, "el primer usuario debe ser admin")
	assert.NotEmpty(t, resp.Token)

	require.Len(t, orgRepo.orgs, 1)
	assert.Equal(t, entity.PlanFree, orgRepo.orgs[resp.User.OrganizationID].Plan,
		"una organización nueva arranca en plan free")

	// El hash nunca viaja en la respuesta y el token referencia al usuario.
	userID, orgID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, resp.User.OrganizationID, orgID)
	assert.Equal(t, entity.RoleAdmin, role)

	stored, err := userRepo.GetByID(resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", stored.PasswordHash, "el password nunca se guarda plano")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "First Org",
		Email:            "dup@crm.com",
		Password:         "secret123",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "Second Org",
		Email:            "dup@crm.com",
		Password:         "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@crm.com", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "Demo",
		Email:            "login@crm.com",
		Password:         "secret123",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "login@crm.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@crm.com", resp.User.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "Demo",
		Email:            "login@crm.com",
		Password:         "secret123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "login@crm.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "ghost@crm.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMe_DevuelvePerfilSinHash(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{
		OrganizationName: "Demo",
		Name:             "Admin User",
		Email:            "me@crm.com",
		Password:         "secret123",
	})
	require.NoError(t, err)

	user, err := uc.Me(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@crm.com", user.Email)
	assert.Equal(t, "Admin User", user.Name)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Me(999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
