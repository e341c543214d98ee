// Package workflow define las máquinas de estados de tareas y recursos como
// tablas explícitas de transición (origen → destinos permitidos).
package workflow

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// taskTransitions es el grafo de producción de una tarea:
//
//	en-fila → en-proceso → revision → entregado
//
// requiere-atencion es alcanzable desde cualquier estado no terminal y vuelve
// a en-proceso una vez atendido. entregado es terminal. revision puede devolver
// la tarea a en-proceso (cambios solicitados por el revisor).
var taskTransitions = map[string][]string{
	entity.TaskStatusEnFila:           {entity.TaskStatusEnProceso, entity.TaskStatusRequiereAtencion},
	entity.TaskStatusEnProceso:        {entity.TaskStatusRevision, entity.TaskStatusRequiereAtencion},
	entity.TaskStatusRevision:         {entity.TaskStatusEntregado, entity.TaskStatusEnProceso, entity.TaskStatusRequiereAtencion},
	entity.TaskStatusRequiereAtencion: {entity.TaskStatusEnProceso},
	entity.TaskStatusEntregado:        {},
}

// resourceTransitions es el grafo de revisión de un recurso. pendiente es el
// único estado desde el que se revisa; la re-entrega tras necesita-cambios o
// rechazado se modela como una nueva subida (vuelta a pendiente), y aprobado
// es terminal para esa versión del artefacto. Re-confirmar el mismo estado de
// revisión está permitido (equivale a una re-revisión manual).
var resourceTransitions = map[string][]string{
	entity.ResourceStatusPendiente: {
		entity.ResourceStatusAprobado,
		entity.ResourceStatusNecesitaCambios,
		entity.ResourceStatusRechazado,
	},
	entity.ResourceStatusAprobado:        {},
	entity.ResourceStatusNecesitaCambios: {entity.ResourceStatusNecesitaCambios, entity.ResourceStatusRechazado},
	entity.ResourceStatusRechazado:       {entity.ResourceStatusRechazado, entity.ResourceStatusNecesitaCambios},
}

// CanTransitionTask indica si una tarea puede pasar de from a to.
func CanTransitionTask(from, to string) bool {
	return contains(taskTransitions[from], to)
}

// IsTaskStatus indica si s es un estado de tarea conocido.
func IsTaskStatus(s string) bool {
	_, ok := taskTransitions[s]
	return ok
}

// CanReviewResource indica si un recurso en estado from admite la decisión to.
func CanReviewResource(from, to string) bool {
	return contains(resourceTransitions[from], to)
}

// IsResourceStatus indica si s es un estado de recurso conocido.
func IsResourceStatus(s string) bool {
	_, ok := resourceTransitions[s]
	return ok
}

// ReviewRequiresNotes indica si la decisión de revisión exige observaciones
// no vacías (necesita-cambios y rechazado las exigen; aprobado nunca).
func ReviewRequiresNotes(status string) bool {
	return status == entity.ResourceStatusNecesitaCambios || status == entity.ResourceStatusRechazado
}

// SpawnsCorrectionTask indica si la decisión de revisión genera una tarea de
// corrección ligada a la marca del recurso.
func SpawnsCorrectionTask(status string) bool {
	return status == entity.ResourceStatusNecesitaCambios || status == entity.ResourceStatusRechazado
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
