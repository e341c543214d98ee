package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
)

// TaskHandler maneja las peticiones HTTP para tareas (protegido).
type TaskHandler struct {
	createUC  *tasks.CreateTaskUseCase
	advanceUC *tasks.AdvanceStatusUseCase
	queryUC   *tasks.TaskQueryUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(createUC *tasks.CreateTaskUseCase, advanceUC *tasks.AdvanceStatusUseCase, queryUC *tasks.TaskQueryUseCase) *TaskHandler {
	return &TaskHandler{createUC: createUC, advanceUC: advanceUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Crear tarea
// @Description  El precio se resuelve del precio pactado del cliente o del precio base del servicio, salvo custom_price. Aplica el límite de tareas activas del plan.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateTask(c.Context(), GetActor(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBulk godoc
// @Summary      Crear tareas en lote
// @Description  Transaccional: si una tarea del lote es inválida no se crea ninguna.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCreateTasksRequest  true  "Lote de tareas"
// @Success      201   {array}   dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks/bulk [post]
func (h *TaskHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkCreateTasksRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateBulk(c.Context(), GetActor(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarea por ID
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar tarea
// @Description  La edición no pasa por el límite de tareas del plan.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.UpdateTask(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(out)
}

// AdvanceStatus godoc
// @Summary      Cambiar estado de una tarea
// @Description  Valida la transición contra la máquina de estados del flujo de producción.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.AdvanceStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) AdvanceStatus(c *fiber.Ctx) error {
	var in dto.AdvanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.advanceUC.AdvanceStatus(c.Context(), GetActor(c), c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tareas
// @Description  Filtra por brand_id, status o assigned_to (excluyentes, en ese orden de precedencia).
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        brand_id     query  string  false  "ID de la marca"
// @Param        status       query  string  false  "Estado"
// @Param        assigned_to  query  string  false  "ID del colaborador asignado"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {object}  dto.TaskListResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	switch {
	case c.Query("brand_id") != "":
		out, err := h.queryUC.ListByBrand(c.Query("brand_id"), page.Limit, page.Offset)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case c.Query("status") != "":
		out, err := h.queryUC.ListByStatus(c.Query("status"), page.Limit, page.Offset)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case c.Query("assigned_to") != "":
		out, err := h.queryUC.ListByAssignee(c.Query("assigned_to"), page.Limit, page.Offset)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "MISSING_FILTER",
			Message: "brand_id, status o assigned_to es requerido",
		})
	}
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tarea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.queryUC.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
