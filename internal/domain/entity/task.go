package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producción de una tarea.
const (
	TaskStatusEnFila           = "en-fila"
	TaskStatusEnProceso        = "en-proceso"
	TaskStatusRevision         = "revision"
	TaskStatusEntregado        = "entregado"
	TaskStatusRequiereAtencion = "requiere-atencion"
)

// Prioridades de tarea.
const (
	TaskPriorityNormal  = "normal"
	TaskPriorityAlta    = "alta"
	TaskPriorityUrgente = "urgente"
)

// Task es una unidad de trabajo creativo para una marca, con fecha de entrega,
// colaborador asignado y precio resuelto al crearla.
// Invariante: DueDate estrictamente posterior a RequestDate.
type Task struct {
	ID          string
	ClientID    string
	BrandID     string
	ServiceID   string
	Title       string
	Description string
	Status      string // en-fila, en-proceso, revision, entregado, requiere-atencion
	Priority    string // normal, alta, urgente
	RequestDate time.Time
	DueDate     time.Time
	AssignedTo  string // collaborator id; puede estar vacío (sin asignar)
	Price       decimal.Decimal
	CustomPrice bool // true si el precio fue fijado a mano en lugar de resolverse del catálogo
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDelivered indica si la tarea llegó a su estado terminal.
func (t *Task) IsDelivered() bool { return t.Status == TaskStatusEntregado }
