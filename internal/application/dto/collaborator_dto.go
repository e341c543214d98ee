package dto

import "time"

// CollaboratorResponse representación pública de un colaborador (sin hash).
type CollaboratorResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	HasSystemAccess  bool      `json:"has_system_access"`
	IsActive         bool      `json:"is_active"`
	CompensationMode string    `json:"compensation_mode"`
	WeeklySalary     string    `json:"weekly_salary,omitempty"`
	BaseActivityRate string    `json:"base_activity_rate,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CollaboratorListResponse listado paginado.
type CollaboratorListResponse struct {
	Items []CollaboratorResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ApproveCollaboratorRequest decisión de aprobación.
type ApproveCollaboratorRequest struct {
	Approve bool `json:"approve"`
}

// SystemAccessRequest otorga o revoca acceso al sistema.
type SystemAccessRequest struct {
	Grant bool `json:"grant"`
}

// ChangePasswordRequest cambio directo de contraseña (solo director).
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}
