package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	apptasks "github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
	"github.com/agenciaflow/agencia-api/internal/domain/workflow"
)

// Plazo por defecto de una tarea de corrección.
const correctionDueDays = 3

// ReviewResourceUseCase ejecuta la acción de revisión sobre un recurso:
// cambia el estado, deja SIEMPRE una fila inmutable en el historial y, si la
// decisión es necesita-cambios o rechazado, genera una tarea de corrección en
// la misma marca y con el mismo colaborador. Las tres escrituras van en una
// sola transacción.
type ReviewResourceUseCase struct {
	txRunner     TxRunner
	resourceRepo repository.ResourceRepository
	taskRepo     repository.TaskRepository
	brandRepo    repository.BrandRepository
	perm         *permission.Checker
	notifier     Notifier
}

// NewReviewResourceUseCase construye el caso de uso. notifier puede ser nil.
func NewReviewResourceUseCase(
	txRunner TxRunner,
	resourceRepo repository.ResourceRepository,
	taskRepo repository.TaskRepository,
	brandRepo repository.BrandRepository,
	perm *permission.Checker,
	notifier Notifier,
) *ReviewResourceUseCase {
	return &ReviewResourceUseCase{
		txRunner:     txRunner,
		resourceRepo: resourceRepo,
		taskRepo:     taskRepo,
		brandRepo:    brandRepo,
		perm:         perm,
		notifier:     notifier,
	}
}

// ReviewResource aplica la decisión de revisión.
//
// Precondiciones:
//   - el actor necesita editAll;
//   - necesita-cambios y rechazado exigen observaciones no vacías (recortadas);
//   - la transición debe estar permitida por la tabla de workflow.
//
// Repetir la misma decisión sobre un recurso ya revisado está permitido y
// añade una nueva fila de historial (equivale a una re-revisión manual; no se
// deduplica).
func (uc *ReviewResourceUseCase) ReviewResource(ctx context.Context, actor dto.Actor, resourceID string, in dto.ReviewResourceRequest) (*dto.ReviewResourceResponse, error) {
	if !uc.perm.HasPermission(permission.Role(actor.Role), permission.EditAll, permission.Subject{Email: actor.Email, SuperAdmin: actor.SuperAdmin}) {
		return nil, domain.ErrForbidden
	}

	ve := domain.NewValidationError()
	if !workflow.IsResourceStatus(in.Status) || in.Status == entity.ResourceStatusPendiente {
		ve.Add("status", "estado de revisión inválido")
	}
	observations := strings.TrimSpace(in.Observations)
	if workflow.ReviewRequiresNotes(in.Status) && observations == "" {
		ve.Add("observations", "las observaciones son obligatorias para necesita-cambios y rechazado")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	resource, err := uc.resourceRepo.GetByID(resourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, domain.ErrNotFound
	}
	if !workflow.CanReviewResource(resource.Status, in.Status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, resource.Status, in.Status)
	}

	var correction *entity.Task
	if workflow.SpawnsCorrectionTask(in.Status) {
		correction, err = uc.buildCorrectionTask(actor, resource, observations)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	historyEntry := &entity.ResourceReviewHistory{
		ID:         uuid.New().String(),
		ResourceID: resource.ID,
		OldStatus:  resource.Status,
		NewStatus:  in.Status,
		Notes:      observations,
		ReviewedBy: actor.ID,
		CreatedAt:  now,
	}

	err = uc.txRunner.RunReview(ctx, func(
		resourceRepo repository.ResourceRepository,
		historyRepo repository.ReviewHistoryRepository,
		taskRepo repository.TaskRepository,
	) error {
		if err := resourceRepo.UpdateReview(resource.ID, in.Status, observations); err != nil {
			return err
		}
		if err := historyRepo.Create(historyEntry); err != nil {
			return err
		}
		if correction != nil {
			if err := taskRepo.Create(correction); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("revisar recurso: %w", err)
	}

	resource.Status = in.Status
	resource.ReviewNotes = observations
	resource.UpdatedAt = now

	uc.notify(ctx, resource, correction)

	out := &dto.ReviewResourceResponse{Resource: *ToResourceResponse(resource)}
	if correction != nil {
		out.CorrectionTask = apptasks.ToTaskResponse(correction)
	}
	return out, nil
}

// buildCorrectionTask arma la tarea de corrección: misma marca y colaborador
// que la tarea de origen del recurso; si el recurso no está ligado a una
// tarea, se usa la marca del recurso y quien lo subió.
func (uc *ReviewResourceUseCase) buildCorrectionTask(actor dto.Actor, resource *entity.Resource, observations string) (*entity.Task, error) {
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		BrandID:     resource.BrandID,
		Title:       "Corrección: " + resource.Name,
		Description: observations,
		Status:      entity.TaskStatusEnFila,
		Priority:    entity.TaskPriorityAlta,
		RequestDate: now,
		DueDate:     now.AddDate(0, 0, correctionDueDays),
		AssignedTo:  resource.UploadedBy,
		Price:       decimal.Zero,
		CustomPrice: true,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if resource.TaskID != "" {
		origin, err := uc.taskRepo.GetByID(resource.TaskID)
		if err != nil {
			return nil, fmt.Errorf("consultar tarea de origen: %w", err)
		}
		if origin != nil {
			task.ClientID = origin.ClientID
			task.BrandID = origin.BrandID
			task.ServiceID = origin.ServiceID
			if origin.AssignedTo != "" {
				task.AssignedTo = origin.AssignedTo
			}
		}
	}
	if task.ClientID == "" && task.BrandID != "" {
		brand, err := uc.brandRepo.GetByID(task.BrandID)
		if err != nil {
			return nil, fmt.Errorf("consultar marca del recurso: %w", err)
		}
		if brand != nil {
			task.ClientID = brand.ClientID
		}
	}
	return task, nil
}

func (uc *ReviewResourceUseCase) notify(ctx context.Context, resource *entity.Resource, correction *entity.Task) {
	if uc.notifier == nil {
		return
	}
	msg := fmt.Sprintf("recurso %q marcado como %s", resource.Name, resource.Status)
	if correction != nil {
		msg += fmt.Sprintf("; tarea de corrección %s creada", correction.ID)
	}
	uc.notifier.Notify(ctx, "resource_reviewed", msg)
}

// ToResourceResponse convierte la entidad al DTO de respuesta.
func ToResourceResponse(r *entity.Resource) *dto.ResourceResponse {
	if r == nil {
		return nil
	}
	return &dto.ResourceResponse{
		ID:          r.ID,
		TaskID:      r.TaskID,
		BrandID:     r.BrandID,
		Name:        r.Name,
		Type:        r.Type,
		Status:      r.Status,
		UploadedBy:  r.UploadedBy,
		ReviewNotes: r.ReviewNotes,
		FileURL:     r.FileURL,
		ExternalURL: r.ExternalURL,
		Platform:    r.Platform,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
