package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// CreateTaskUseCase crea y edita tareas aplicando las reglas de negocio:
// campos obligatorios, fecha de entrega posterior a la de solicitud, límite de
// tareas activas por marca según el plan del cliente y resolución de precio.
// Todas las violaciones de precondición se reportan juntas en un ValidationError.
type CreateTaskUseCase struct {
	txRunner     TxRunner
	taskRepo     repository.TaskRepository
	clientRepo   repository.ClientRepository
	brandRepo    repository.BrandRepository
	serviceRepo  repository.ServiceRepository
	overrideRepo repository.PriceOverrideRepository
	perm         *permission.Checker
	planLimits   PlanResolver
}

// NewCreateTaskUseCase construye el caso de uso. Si planLimits es nil se usa
// DefaultPlanLimits.
func NewCreateTaskUseCase(
	txRunner TxRunner,
	taskRepo repository.TaskRepository,
	clientRepo repository.ClientRepository,
	brandRepo repository.BrandRepository,
	serviceRepo repository.ServiceRepository,
	overrideRepo repository.PriceOverrideRepository,
	perm *permission.Checker,
	planLimits PlanResolver,
) *CreateTaskUseCase {
	if planLimits == nil {
		planLimits = DefaultPlanLimits
	}
	return &CreateTaskUseCase{
		txRunner:     txRunner,
		taskRepo:     taskRepo,
		clientRepo:   clientRepo,
		brandRepo:    brandRepo,
		serviceRepo:  serviceRepo,
		overrideRepo: overrideRepo,
		perm:         perm,
		planLimits:   planLimits,
	}
}

// CreateTask valida y crea una tarea nueva. El límite del plan solo aplica a
// tareas nuevas; la edición pasa por UpdateTask.
func (uc *CreateTaskUseCase) CreateTask(ctx context.Context, actor dto.Actor, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !uc.perm.HasPermission(permission.Role(actor.Role), permission.CreateTasks, subjectOf(actor)) {
		return nil, domain.ErrForbidden
	}

	task, err := uc.buildTask(actor, in, true)
	if err != nil {
		return nil, err
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("crear tarea: %w", err)
	}
	return ToTaskResponse(task), nil
}

// CreateBulk valida todas las tareas y las crea en una sola transacción:
// si alguna falla (validación o escritura) no se crea ninguna.
func (uc *CreateTaskUseCase) CreateBulk(ctx context.Context, actor dto.Actor, in dto.BulkCreateTasksRequest) ([]*dto.TaskResponse, error) {
	if !uc.perm.HasPermission(permission.Role(actor.Role), permission.CreateTasks, subjectOf(actor)) {
		return nil, domain.ErrForbidden
	}
	if len(in.Tasks) == 0 {
		ve := domain.NewValidationError()
		ve.Add("tasks", "debe incluir al menos una tarea")
		return nil, ve
	}

	built := make([]*entity.Task, 0, len(in.Tasks))
	for i, req := range in.Tasks {
		task, err := uc.buildTask(actor, req, true)
		if err != nil {
			return nil, fmt.Errorf("tarea %d: %w", i, err)
		}
		built = append(built, task)
	}

	err := uc.txRunner.RunTasks(ctx, func(taskRepo repository.TaskRepository) error {
		for _, t := range built {
			if err := taskRepo.Create(t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crear tareas en lote: %w", err)
	}

	out := make([]*dto.TaskResponse, 0, len(built))
	for _, t := range built {
		out = append(out, ToTaskResponse(t))
	}
	return out, nil
}

// UpdateTask edita una tarea existente. No aplica el límite del plan: editar
// no aumenta la cantidad de tareas activas de la marca.
func (uc *CreateTaskUseCase) UpdateTask(ctx context.Context, actor dto.Actor, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if !uc.perm.HasPermission(permission.Role(actor.Role), permission.CreateTasks, subjectOf(actor)) {
		return nil, domain.ErrForbidden
	}
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	ve := domain.NewValidationError()
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			ve.Add("title", "el título no puede quedar vacío")
		} else {
			task.Title = *in.Title
		}
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		if !in.DueDate.After(task.RequestDate) {
			ve.Add("due_date", "la fecha de entrega debe ser posterior a la de solicitud")
		} else {
			task.DueDate = *in.DueDate
		}
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	if in.CustomPrice != nil {
		task.CustomPrice = *in.CustomPrice
	}
	if task.CustomPrice && in.Price != nil {
		task.Price = *in.Price
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("actualizar tarea: %w", err)
	}
	return ToTaskResponse(task), nil
}

// buildTask valida la petición completa (acumulando TODAS las violaciones) y
// construye la entidad con el precio resuelto. applyLimit controla el chequeo
// del límite del plan (solo tareas nuevas).
func (uc *CreateTaskUseCase) buildTask(actor dto.Actor, in dto.CreateTaskRequest, applyLimit bool) (*entity.Task, error) {
	ve := domain.NewValidationError()
	now := time.Now()

	if in.ClientID == "" {
		ve.Add("client_id", "client_id es requerido")
	}
	if in.BrandID == "" {
		ve.Add("brand_id", "brand_id es requerido")
	}
	if strings.TrimSpace(in.Title) == "" {
		ve.Add("title", "title es requerido")
	}
	if in.ServiceID == "" {
		ve.Add("service_id", "service_id es requerido")
	}
	if in.DueDate.IsZero() {
		ve.Add("due_date", "due_date es requerido")
	}
	if in.CustomPrice && in.Price == nil {
		ve.Add("price", "price es requerido cuando custom_price es true")
	}

	requestDate := in.RequestDate
	if requestDate.IsZero() {
		requestDate = now
	}
	if !in.DueDate.IsZero() && !in.DueDate.After(requestDate) {
		ve.Add("due_date", "la fecha de entrega debe ser estrictamente posterior a la de solicitud")
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityNormal
	}

	// Las validaciones contra la base solo aplican si los IDs llegaron;
	// los campos faltantes ya quedaron registrados arriba.
	var service *entity.Service
	if in.ServiceID != "" {
		s, err := uc.serviceRepo.GetByID(in.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("consultar servicio: %w", err)
		}
		if s == nil {
			ve.Add("service_id", "el servicio no existe")
		}
		service = s
	}

	var client *entity.Client
	if in.ClientID != "" {
		c, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("consultar cliente: %w", err)
		}
		if c == nil {
			ve.Add("client_id", "el cliente no existe")
		}
		client = c
	}

	if in.BrandID != "" && client != nil {
		brand, err := uc.brandRepo.GetByID(in.BrandID)
		if err != nil {
			return nil, fmt.Errorf("consultar marca: %w", err)
		}
		switch {
		case brand == nil:
			ve.Add("brand_id", "la marca no existe")
		case brand.ClientID != client.ID:
			ve.Add("brand_id", "la marca no pertenece al cliente")
		case applyLimit:
			count, err := uc.taskRepo.CountActiveByBrand(in.BrandID)
			if err != nil {
				return nil, fmt.Errorf("contar tareas activas: %w", err)
			}
			limit := uc.planLimits(client.Plan)
			if count >= limit {
				ve.Add("task_limit", fmt.Sprintf("la marca alcanzó el límite de %d tareas activas del plan", limit))
			}
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	price, err := uc.resolvePrice(in, client, service)
	if err != nil {
		return nil, err
	}

	return &entity.Task{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		BrandID:     in.BrandID,
		ServiceID:   in.ServiceID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      entity.TaskStatusEnFila,
		Priority:    priority,
		RequestDate: requestDate,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
		Price:       price,
		CustomPrice: in.CustomPrice,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// resolvePrice aplica la regla determinista de precios:
//
//	custom_price == true  → precio explícito de la petición.
//	custom_price == false → precio pactado del cliente para el servicio si
//	                        existe; si no, precio base del servicio.
func (uc *CreateTaskUseCase) resolvePrice(in dto.CreateTaskRequest, client *entity.Client, service *entity.Service) (decimal.Decimal, error) {
	if in.CustomPrice {
		return *in.Price, nil
	}
	override, err := uc.overrideRepo.GetByClientAndService(client.ID, service.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("consultar precio pactado: %w", err)
	}
	if override != nil {
		return override.Price, nil
	}
	return service.BasePrice, nil
}

// ToTaskResponse convierte la entidad al DTO de respuesta.
func ToTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		ClientID:    t.ClientID,
		BrandID:     t.BrandID,
		ServiceID:   t.ServiceID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		RequestDate: t.RequestDate,
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		Price:       t.Price,
		CustomPrice: t.CustomPrice,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func subjectOf(actor dto.Actor) permission.Subject {
	return permission.Subject{Email: actor.Email, SuperAdmin: actor.SuperAdmin}
}
