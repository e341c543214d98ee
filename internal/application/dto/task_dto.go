package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest alta de tarea. Si CustomPrice es true, Price es obligatorio;
// si es false, el precio se resuelve del precio pactado del cliente o del precio
// base del servicio.
type CreateTaskRequest struct {
	ClientID    string           `json:"client_id"`
	BrandID     string           `json:"brand_id"`
	ServiceID   string           `json:"service_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	DueDate     time.Time        `json:"due_date"`
	RequestDate time.Time        `json:"request_date"`
	AssignedTo  string           `json:"assigned_to"`
	CustomPrice bool             `json:"custom_price"`
	Price       *decimal.Decimal `json:"price"`
}

// BulkCreateTasksRequest creación masiva: todas o ninguna.
type BulkCreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks"`
}

// UpdateTaskRequest edición de una tarea existente (no pasa por el límite del plan).
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *string          `json:"priority"`
	DueDate     *time.Time       `json:"due_date"`
	AssignedTo  *string          `json:"assigned_to"`
	CustomPrice *bool            `json:"custom_price"`
	Price       *decimal.Decimal `json:"price"`
}

// AdvanceStatusRequest transición de estado de una tarea.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse representación de una tarea.
type TaskResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	BrandID     string          `json:"brand_id"`
	ServiceID   string          `json:"service_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	RequestDate time.Time       `json:"request_date"`
	DueDate     time.Time       `json:"due_date"`
	AssignedTo  string          `json:"assigned_to,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CustomPrice bool            `json:"custom_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TaskListResponse listado paginado.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
