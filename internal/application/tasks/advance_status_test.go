package tasks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
)

func newAdvanceFixture(status string) (*tasks.AdvanceStatusUseCase, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	repo.tasks["t-1"] = &entity.Task{ID: "t-1", BrandID: brandID, Title: "Post abril", Status: status}
	perm := permission.NewChecker(permission.DefaultMatrix(), nil)
	return tasks.NewAdvanceStatusUseCase(repo, perm), repo
}

func TestAdvanceStatus_TransicionValida(t *testing.T) {
	uc, repo := newAdvanceFixture(entity.TaskStatusEnFila)

	resp, err := uc.AdvanceStatus(context.Background(), director(), "t-1", entity.TaskStatusEnProceso)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusEnProceso, resp.Status)
	assert.Equal(t, entity.TaskStatusEnProceso, repo.tasks["t-1"].Status, "el cambio debe persistirse")
}

func TestAdvanceStatus_TransicionProhibida(t *testing.T) {
	uc, repo := newAdvanceFixture(entity.TaskStatusEnFila)

	_, err := uc.AdvanceStatus(context.Background(), director(), "t-1", entity.TaskStatusEntregado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.TaskStatusEnFila, repo.tasks["t-1"].Status, "la tarea no debe cambiar")
}

func TestAdvanceStatus_EntregadoEsTerminal(t *testing.T) {
	uc, _ := newAdvanceFixture(entity.TaskStatusEntregado)

	_, err := uc.AdvanceStatus(context.Background(), director(), "t-1", entity.TaskStatusEnProceso)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdvanceStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := newAdvanceFixture(entity.TaskStatusEnFila)

	_, err := uc.AdvanceStatus(context.Background(), director(), "t-1", "archivado")
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")
}

func TestAdvanceStatus_RequiereEditAll(t *testing.T) {
	uc, _ := newAdvanceFixture(entity.TaskStatusEnFila)
	operador := dto.Actor{ID: "co-op", Role: entity.RoleOperador}

	_, err := uc.AdvanceStatus(context.Background(), operador, "t-1", entity.TaskStatusEnProceso)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdvanceStatus_TareaInexistente(t *testing.T) {
	uc, _ := newAdvanceFixture(entity.TaskStatusEnFila)

	_, err := uc.AdvanceStatus(context.Background(), director(), "no-existe", entity.TaskStatusEnProceso)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
