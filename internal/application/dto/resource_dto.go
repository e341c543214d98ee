package dto

import "time"

// UploadResourceRequest metadatos de un recurso. La carga puede ser un archivo
// (el handler lo sube al storage y llena FileURL/FilePath) o una URL externa.
type UploadResourceRequest struct {
	TaskID      string `json:"task_id"`
	BrandID     string `json:"brand_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	ExternalURL string `json:"external_url"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
}

// ReviewResourceRequest decisión de revisión sobre un recurso.
type ReviewResourceRequest struct {
	Status       string `json:"status"` // aprobado, necesita-cambios, rechazado
	Observations string `json:"observations"`
}

// ResourceResponse representación de un recurso.
type ResourceResponse struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id,omitempty"`
	BrandID     string    `json:"brand_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	UploadedBy  string    `json:"uploaded_by"`
	ReviewNotes string    `json:"review_notes,omitempty"`
	FileURL     string    `json:"file_url,omitempty"`
	ExternalURL string    `json:"external_url,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResourceListResponse listado paginado.
type ResourceListResponse struct {
	Items []ResourceResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReviewHistoryEntry fila del historial de revisión.
type ReviewHistoryEntry struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Notes      string    `json:"notes,omitempty"`
	ReviewedBy string    `json:"reviewed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewResourceResponse recurso actualizado + tarea de corrección si se generó.
type ReviewResourceResponse struct {
	Resource       ResourceResponse `json:"resource"`
	CorrectionTask *TaskResponse    `json:"correction_task,omitempty"`
}
