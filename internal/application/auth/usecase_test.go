package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/auth"
	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
	"github.com/agenciaflow/agencia-api/pkg/jwt"
)

type memCollabRepo struct {
	byEmail map[string]*entity.Collaborator
}

func newMemCollabRepo() *memCollabRepo {
	return &memCollabRepo{byEmail: map[string]*entity.Collaborator{}}
}

func (m *memCollabRepo) Create(c *entity.Collaborator) error {
	if _, ok := m.byEmail[c.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *c
	m.byEmail[c.Email] = &cp
	return nil
}

func (m *memCollabRepo) GetByID(id string) (*entity.Collaborator, error) {
	for _, c := range m.byEmail {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCollabRepo) GetByEmail(email string) (*entity.Collaborator, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCollabRepo) Update(c *entity.Collaborator) error {
	cp := *c
	m.byEmail[c.Email] = &cp
	return nil
}

func (m *memCollabRepo) UpdatePasswordHash(string, string) error { return nil }
func (m *memCollabRepo) List(int, int) ([]*entity.Collaborator, error) {
	return nil, nil
}
func (m *memCollabRepo) ListByStatus(string, int, int) ([]*entity.Collaborator, error) {
	return nil, nil
}
func (m *memCollabRepo) Delete(string) error { return nil }

var _ repository.CollaboratorRepository = (*memCollabRepo)(nil)

func newAuthUC(repo repository.CollaboratorRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-pruebas",
		ExpMinutes: 30,
		Issuer:     "agencia",
	})
}

func TestRegister_QuedaPendienteSinAcceso(t *testing.T) {
	uc := newAuthUC(newMemCollabRepo())

	resp, err := uc.Register(dto.RegisterRequest{
		Name:     "Laura Ríos",
		Email:    "  LAURA@Agencia.co ",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	assert.Equal(t, "laura@agencia.co", resp.Email, "el email se guarda normalizado")
	assert.Equal(t, entity.CollaboratorPendingApproval, resp.Status)
	assert.False(t, resp.HasSystemAccess, "el acceso se otorga aparte, tras la aprobación")
	assert.True(t, resp.IsActive)
	assert.Equal(t, entity.RoleFreelance, resp.Role, "rol por defecto")
}

func TestRegister_ValidaCampos(t *testing.T) {
	uc := newAuthUC(newMemCollabRepo())

	_, err := uc.Register(dto.RegisterRequest{Password: "corta"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
	assert.Contains(t, ve.Fields, "name")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUC(newMemCollabRepo())

	req := dto.RegisterRequest{Name: "Laura", Email: "laura@agencia.co", Password: "contraseña-larga"}
	_, err := uc.Register(req)
	require.NoError(t, err)

	_, err = uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_FlujoCompleto(t *testing.T) {
	repo := newMemCollabRepo()
	uc := newAuthUC(repo)

	resp, err := uc.Register(dto.RegisterRequest{
		Name:     "Laura",
		Email:    "laura@agencia.co",
		Password: "contraseña-larga",
		Role:     entity.RoleOperador,
	})
	require.NoError(t, err)

	// Recién registrada no puede entrar: está pendiente y sin acceso.
	_, err = uc.Login(dto.LoginRequest{Email: "laura@agencia.co", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Aprobación + acceso habilitan el login.
	collab := repo.byEmail["laura@agencia.co"]
	collab.Status = entity.CollaboratorApproved
	collab.HasSystemAccess = true

	login, err := uc.Login(dto.LoginRequest{Email: "laura@agencia.co", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.User.ID)

	// El token lleva la identidad completa.
	data, err := jwt.Parse("secreto-de-pruebas", login.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, data.UserID)
	assert.Equal(t, "laura@agencia.co", data.Email)
	assert.Equal(t, entity.RoleOperador, data.Role)
	assert.False(t, data.SuperAdmin)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	repo := newMemCollabRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "Laura", Email: "laura@agencia.co", Password: "contraseña-larga"})
	require.NoError(t, err)
	repo.byEmail["laura@agencia.co"].Status = entity.CollaboratorApproved
	repo.byEmail["laura@agencia.co"].HasSystemAccess = true

	_, err = uc.Login(dto.LoginRequest{Email: "laura@agencia.co", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newMemCollabRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@agencia.co", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_DesactivadoNoEntra(t *testing.T) {
	repo := newMemCollabRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "Laura", Email: "laura@agencia.co", Password: "contraseña-larga"})
	require.NoError(t, err)
	collab := repo.byEmail["laura@agencia.co"]
	collab.Status = entity.CollaboratorApproved
	collab.HasSystemAccess = true
	collab.IsActive = false

	_, err = uc.Login(dto.LoginRequest{Email: "laura@agencia.co", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
