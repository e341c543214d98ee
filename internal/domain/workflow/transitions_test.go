package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/workflow"
)

func TestCanTransitionTask_FlujoFeliz(t *testing.T) {
	assert.True(t, workflow.CanTransitionTask(entity.TaskStatusEnFila, entity.TaskStatusEnProceso))
	assert.True(t, workflow.CanTransitionTask(entity.TaskStatusEnProceso, entity.TaskStatusRevision))
	assert.True(t, workflow.CanTransitionTask(entity.TaskStatusRevision, entity.TaskStatusEntregado))
}

func TestCanTransitionTask_Retrocesos(t *testing.T) {
	// El revisor puede devolver la tarea a producción.
	assert.True(t, workflow.CanTransitionTask(entity.TaskStatusRevision, entity.TaskStatusEnProceso))

	// requiere-atencion se alcanza desde cualquier estado no terminal y
	// solo sale hacia en-proceso.
	for _, from := range []string{entity.TaskStatusEnFila, entity.TaskStatusEnProceso, entity.TaskStatusRevision} {
		assert.True(t, workflow.CanTransitionTask(from, entity.TaskStatusRequiereAtencion), "desde %s", from)
	}
	assert.True(t, workflow.CanTransitionTask(entity.TaskStatusRequiereAtencion, entity.TaskStatusEnProceso))
	assert.False(t, workflow.CanTransitionTask(entity.TaskStatusRequiereAtencion, entity.TaskStatusEntregado),
		"requiere-atencion no puede saltar directo a entregado")
}

func TestCanTransitionTask_EntregadoEsTerminal(t *testing.T) {
	for _, to := range []string{
		entity.TaskStatusEnFila, entity.TaskStatusEnProceso, entity.TaskStatusRevision,
		entity.TaskStatusRequiereAtencion, entity.TaskStatusEntregado,
	} {
		assert.False(t, workflow.CanTransitionTask(entity.TaskStatusEntregado, to),
			"entregado → %s debe estar prohibido", to)
	}
}

func TestCanTransitionTask_SaltosProhibidos(t *testing.T) {
	assert.False(t, workflow.CanTransitionTask(entity.TaskStatusEnFila, entity.TaskStatusEntregado))
	assert.False(t, workflow.CanTransitionTask(entity.TaskStatusEnFila, entity.TaskStatusRevision))
	assert.False(t, workflow.CanTransitionTask(entity.TaskStatusEnProceso, entity.TaskStatusEntregado))
	// Auto-transición no está en la tabla.
	assert.False(t, workflow.CanTransitionTask(entity.TaskStatusEnProceso, entity.TaskStatusEnProceso))
}

func TestIsTaskStatus(t *testing.T) {
	assert.True(t, workflow.IsTaskStatus(entity.TaskStatusEnFila))
	assert.True(t, workflow.IsTaskStatus(entity.TaskStatusEntregado))
	assert.False(t, workflow.IsTaskStatus("archivado"))
	assert.False(t, workflow.IsTaskStatus(""))
}

func TestCanReviewResource_DesdePendiente(t *testing.T) {
	for _, to := range []string{
		entity.ResourceStatusAprobado,
		entity.ResourceStatusNecesitaCambios,
		entity.ResourceStatusRechazado,
	} {
		assert.True(t, workflow.CanReviewResource(entity.ResourceStatusPendiente, to), "pendiente → %s", to)
	}
	assert.False(t, workflow.CanReviewResource(entity.ResourceStatusPendiente, entity.ResourceStatusPendiente))
}

func TestCanReviewResource_AprobadoEsTerminal(t *testing.T) {
	for _, to := range []string{
		entity.ResourceStatusPendiente, entity.ResourceStatusAprobado,
		entity.ResourceStatusNecesitaCambios, entity.ResourceStatusRechazado,
	} {
		assert.False(t, workflow.CanReviewResource(entity.ResourceStatusAprobado, to),
			"aprobado → %s debe estar prohibido", to)
	}
}

func TestCanReviewResource_ReRevision(t *testing.T) {
	// Repetir o endurecer la decisión sobre un recurso ya observado está
	// permitido; aprobarlo después exige re-entrega (vuelta a pendiente).
	assert.True(t, workflow.CanReviewResource(entity.ResourceStatusNecesitaCambios, entity.ResourceStatusRechazado))
	assert.True(t, workflow.CanReviewResource(entity.ResourceStatusNecesitaCambios, entity.ResourceStatusNecesitaCambios))
	assert.True(t, workflow.CanReviewResource(entity.ResourceStatusRechazado, entity.ResourceStatusNecesitaCambios))
	assert.False(t, workflow.CanReviewResource(entity.ResourceStatusNecesitaCambios, entity.ResourceStatusAprobado))
	assert.False(t, workflow.CanReviewResource(entity.ResourceStatusRechazado, entity.ResourceStatusAprobado))
}

func TestReviewRequiresNotes(t *testing.T) {
	assert.True(t, workflow.ReviewRequiresNotes(entity.ResourceStatusNecesitaCambios))
	assert.True(t, workflow.ReviewRequiresNotes(entity.ResourceStatusRechazado))
	assert.False(t, workflow.ReviewRequiresNotes(entity.ResourceStatusAprobado))
	assert.False(t, workflow.ReviewRequiresNotes(entity.ResourceStatusPendiente))
}

func TestSpawnsCorrectionTask(t *testing.T) {
	assert.True(t, workflow.SpawnsCorrectionTask(entity.ResourceStatusNecesitaCambios))
	assert.True(t, workflow.SpawnsCorrectionTask(entity.ResourceStatusRechazado))
	assert.False(t, workflow.SpawnsCorrectionTask(entity.ResourceStatusAprobado))
}
