package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/ports"
	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// ResourceUseCase gestiona la subida y consulta de recursos. La revisión
// (cambio de estado + historial + tarea de corrección) vive en el paquete
// review; aquí solo está el ciclo de carga.
type ResourceUseCase struct {
	repo        repository.ResourceRepository
	historyRepo repository.ReviewHistoryRepository
	brandRepo   repository.BrandRepository
	taskRepo    repository.TaskRepository
	storage     ports.BlobStorage
	bucket      string
}

// NewResourceUseCase construye el caso de uso. storage puede ser nil si solo
// se aceptan entregas por URL externa.
func NewResourceUseCase(
	repo repository.ResourceRepository,
	historyRepo repository.ReviewHistoryRepository,
	brandRepo repository.BrandRepository,
	taskRepo repository.TaskRepository,
	storage ports.BlobStorage,
	bucket string,
) *ResourceUseCase {
	return &ResourceUseCase{
		repo:        repo,
		historyRepo: historyRepo,
		brandRepo:   brandRepo,
		taskRepo:    taskRepo,
		storage:     storage,
		bucket:      bucket,
	}
}

// Upload registra un recurso nuevo en estado pendiente. Si file no está vacío
// se sube al storage y la URL pública queda en el recurso; si no, se exige una
// URL externa.
func (uc *ResourceUseCase) Upload(ctx context.Context, actor dto.Actor, in dto.UploadResourceRequest, file []byte, filename, contentType string) (*dto.ResourceResponse, error) {
	ve := domain.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name es requerido")
	}
	if in.BrandID == "" {
		ve.Add("brand_id", "brand_id es requerido")
	}
	if !isResourceType(in.Type) {
		ve.Add("type", "tipo de recurso desconocido")
	}
	hasFile := len(file) > 0
	if !hasFile && strings.TrimSpace(in.ExternalURL) == "" {
		ve.Add("file", "debe adjuntar un archivo o indicar external_url")
	}
	if hasFile && uc.storage == nil {
		ve.Add("file", "la subida de archivos no está habilitada")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	brand, err := uc.brandRepo.GetByID(in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.TaskID != "" {
		task, err := uc.taskRepo.GetByID(in.TaskID)
		if err != nil {
			return nil, err
		}
		if task == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	resource := &entity.Resource{
		ID:          uuid.New().String(),
		TaskID:      in.TaskID,
		BrandID:     in.BrandID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Status:      entity.ResourceStatusPendiente,
		UploadedBy:  actor.ID,
		ExternalURL: strings.TrimSpace(in.ExternalURL),
		Platform:    in.Platform,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if hasFile {
		blobPath := path.Join(in.BrandID, resource.ID+"-"+sanitizeFilename(filename))
		url, err := uc.storage.Upload(ctx, uc.bucket, blobPath, file, contentType)
		if err != nil {
			return nil, fmt.Errorf("subir archivo al storage: %w", err)
		}
		resource.FileURL = url
		resource.FilePath = blobPath
	}

	if err := uc.repo.Create(resource); err != nil {
		// El blob ya subido queda huérfano si falla el insert; se intenta
		// limpiar y se reporta el error original.
		if hasFile {
			_ = uc.storage.Delete(ctx, uc.bucket, resource.FilePath)
		}
		return nil, err
	}
	return review.ToResourceResponse(resource), nil
}

// GetByID obtiene un recurso por ID.
func (uc *ResourceUseCase) GetByID(id string) (*dto.ResourceResponse, error) {
	resource, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, nil
	}
	return review.ToResourceResponse(resource), nil
}

// ListByBrand lista recursos de una marca.
func (uc *ResourceUseCase) ListByBrand(brandID string, limit, offset int) (*dto.ResourceListResponse, error) {
	resources, err := uc.repo.ListByBrand(brandID, limit, offset)
	if err != nil {
		return nil, err
	}
	return resourceList(resources, limit, offset), nil
}

// ListByTask lista recursos ligados a una tarea.
func (uc *ResourceUseCase) ListByTask(taskID string) (*dto.ResourceListResponse, error) {
	resources, err := uc.repo.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	return resourceList(resources, 0, 0), nil
}

// History devuelve el historial de revisión de un recurso, más antiguo primero.
func (uc *ResourceUseCase) History(resourceID string) ([]dto.ReviewHistoryEntry, error) {
	entries, err := uc.historyRepo.ListByResource(resourceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewHistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ReviewHistoryEntry{
			ID:         e.ID,
			ResourceID: e.ResourceID,
			OldStatus:  e.OldStatus,
			NewStatus:  e.NewStatus,
			Notes:      e.Notes,
			ReviewedBy: e.ReviewedBy,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}

// Delete elimina el recurso y, si tenía archivo subido, el blob del storage.
func (uc *ResourceUseCase) Delete(ctx context.Context, id string) error {
	resource, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if resource == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if resource.FilePath != "" && uc.storage != nil {
		_ = uc.storage.Delete(ctx, uc.bucket, resource.FilePath)
	}
	return nil
}

func resourceList(resources []*entity.Resource, limit, offset int) *dto.ResourceListResponse {
	items := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		items = append(items, *review.ToResourceResponse(r))
	}
	return &dto.ResourceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func isResourceType(t string) bool {
	switch t {
	case entity.ResourceTypeImage, entity.ResourceTypeVideo, entity.ResourceTypeAudio,
		entity.ResourceTypeDocument, entity.ResourceTypeArchive, entity.ResourceTypeURL:
		return true
	}
	return false
}

// sanitizeFilename deja el nombre apto para ruta de bucket.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(path.Base(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" || name == "." || name == "/" {
		return "archivo"
	}
	return name
}
