package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// CollaboratorHandler gestión de colaboradores: aprobación, acceso al sistema,
// activación y cambio directo de contraseña (protegido).
type CollaboratorHandler struct {
	uc *usecase.CollaboratorUseCase
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(uc *usecase.CollaboratorUseCase) *CollaboratorHandler {
	return &CollaboratorHandler{uc: uc}
}

// List godoc
// @Summary      Listar colaboradores
// @Description  Con status filtra por estado (p.ej. pending_approval para la cola de aprobaciones).
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CollaboratorListResponse
// @Router       /api/collaborators [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener colaborador por ID
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del colaborador"
// @Success      200  {object}  dto.CollaboratorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [get]
func (h *CollaboratorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar o rechazar colaborador
// @Description  Requiere canManageUsers. Aprobar no otorga acceso al sistema; eso es un paso aparte.
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.ApproveCollaboratorRequest  true  "Decisión"
// @Success      200   {object}  dto.CollaboratorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id}/approve [post]
func (h *CollaboratorHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveCollaboratorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Approve(GetActor(c), c.Params("id"), in.Approve)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SetSystemAccess godoc
// @Summary      Otorgar o revocar acceso al sistema
// @Description  Solo puede otorgarse a colaboradores aprobados.
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.SystemAccessRequest  true  "Acceso"
// @Success      200   {object}  dto.CollaboratorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id}/access [post]
func (h *CollaboratorHandler) SetSystemAccess(c *fiber.Ctx) error {
	var in dto.SystemAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetSystemAccess(GetActor(c), c.Params("id"), in.Grant)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar colaborador
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID del colaborador"
// @Param        active  query  bool    true  "Activo"
// @Success      200  {object}  dto.CollaboratorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id}/active [patch]
func (h *CollaboratorHandler) SetActive(c *fiber.Ctx) error {
	out, err := h.uc.SetActive(GetActor(c), c.Params("id"), c.QueryBool("active", true))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña directamente
// @Description  Requiere canChangePasswordsDirectly (solo dirección).
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.ChangePasswordRequest  true  "Nueva contraseña"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id}/password [put]
func (h *CollaboratorHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePasswordDirectly(GetActor(c), c.Params("id"), in.NewPassword); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
