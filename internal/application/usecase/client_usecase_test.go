package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: map[string]*entity.Client{}}
}

func (m *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memClientRepo) Update(c *entity.Client) error {
	cp := *c
	m.clients[c.ID] = &cp
	return nil
}

func (m *memClientRepo) List(int, int) ([]*entity.Client, error)           { return nil, nil }
func (m *memClientRepo) Search(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (m *memClientRepo) Delete(id string) error {
	delete(m.clients, id)
	return nil
}

var _ repository.ClientRepository = (*memClientRepo)(nil)

func TestClientCreate_FacturacionExigeTaxID(t *testing.T) {
	uc := usecase.NewClientUseCase(newMemClientRepo())

	_, err := uc.Create(dto.CreateClientRequest{
		Name:            "Distribuciones Nariño",
		Type:            entity.ClientTypeEmpresa,
		RequiresInvoice: true,
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "facturación sin tax_id debe fallar")
	assert.Contains(t, ve.Fields, "tax_id")

	// Con NIT presente el mismo cliente entra.
	resp, err := uc.Create(dto.CreateClientRequest{
		Name:            "Distribuciones Nariño",
		Type:            entity.ClientTypeEmpresa,
		RequiresInvoice: true,
		TaxID:           "901234567-8",
	})
	require.NoError(t, err)
	assert.Equal(t, "901234567-8", resp.TaxID)
}

func TestClientCreate_SinFacturacionNoExigeTaxID(t *testing.T) {
	uc := usecase.NewClientUseCase(newMemClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{
		Name: "Laura Ríos",
		Type: entity.ClientTypePersona,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.TaxID)
	assert.Equal(t, entity.ClientStatusActivo, resp.Status, "todo cliente nace activo")
	assert.Equal(t, entity.PlanBasic, resp.Plan, "plan por defecto")
}

func TestClientCreate_TipoInvalido(t *testing.T) {
	uc := usecase.NewClientUseCase(newMemClientRepo())

	_, err := uc.Create(dto.CreateClientRequest{Name: "ACME", Type: "ong"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "type")
}

func TestClientUpdate_InvarianteSobreElEstadoResultante(t *testing.T) {
	repo := newMemClientRepo()
	uc := usecase.NewClientUseCase(repo)

	resp, err := uc.Create(dto.CreateClientRequest{
		Name: "Panadería El Trigal",
		Type: entity.ClientTypeEmpresa,
	})
	require.NoError(t, err)

	// Activar facturación sin aportar tax_id viola el invariante aunque el
	// parche en sí no toque tax_id.
	si := true
	_, err = uc.Update(resp.ID, dto.UpdateClientRequest{RequiresInvoice: &si})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "tax_id")

	// El cliente quedó intacto.
	stored, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.RequiresInvoice)

	// Activar facturación y tax_id en el mismo parche sí es válido.
	nit := "800123456-1"
	updated, err := uc.Update(resp.ID, dto.UpdateClientRequest{RequiresInvoice: &si, TaxID: &nit})
	require.NoError(t, err)
	assert.True(t, updated.RequiresInvoice)
	assert.Equal(t, nit, updated.TaxID)
}

func TestClientUpdate_NoPermiteBorrarTaxIDConFacturacionActiva(t *testing.T) {
	uc := usecase.NewClientUseCase(newMemClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{
		Name:            "Constructora Andes",
		Type:            entity.ClientTypeEmpresa,
		RequiresInvoice: true,
		TaxID:           "900111222-3",
	})
	require.NoError(t, err)

	vacio := " "
	_, err = uc.Update(resp.ID, dto.UpdateClientRequest{TaxID: &vacio})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "tax_id")
}

func TestClientUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewClientUseCase(newMemClientRepo())

	resp, err := uc.Update("no-existe", dto.UpdateClientRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp, "cliente inexistente devuelve nil sin error")
}
