package entity

import "time"

// Tipos de recurso.
const (
	ResourceTypeImage    = "image"
	ResourceTypeVideo    = "video"
	ResourceTypeAudio    = "audio"
	ResourceTypeDocument = "document"
	ResourceTypeArchive  = "archive"
	ResourceTypeURL      = "url"
)

// Estados de revisión de un recurso.
const (
	ResourceStatusPendiente       = "pendiente"
	ResourceStatusAprobado        = "aprobado"
	ResourceStatusNecesitaCambios = "necesita-cambios"
	ResourceStatusRechazado       = "rechazado"
)

// Resource es un entregable (archivo subido o URL externa) sujeto a revisión.
// La carga útil es excluyente: FileURL/FilePath para archivos subidos al storage,
// o ExternalURL + Platform para entregas por enlace.
type Resource struct {
	ID          string
	TaskID      string // tarea de origen; puede estar vacío para recursos sueltos de marca
	BrandID     string
	Name        string
	Type        string // image, video, audio, document, archive, url
	Status      string // pendiente, aprobado, necesita-cambios, rechazado
	UploadedBy  string // collaborator id
	ReviewNotes string // últimas observaciones de revisión
	FileURL     string
	FilePath    string // bucket path, para poder borrar del storage
	ExternalURL string
	Platform    string // drive, wetransfer, frame-io...
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResourceReviewHistory es una entrada inmutable del historial de revisión:
// una fila por cada acción de revisión que cambió (o re-confirmó) el estado.
// Nunca se actualiza ni se borra.
type ResourceReviewHistory struct {
	ID         string
	ResourceID string
	OldStatus  string
	NewStatus  string
	Notes      string
	ReviewedBy string
	CreatedAt  time.Time
}
