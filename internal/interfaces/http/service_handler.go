package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// ServiceHandler maneja el catálogo de servicios y los precios pactados (protegido).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio del catálogo
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.UpdateServiceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo de servicios
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo servicios activos"
// @Param        limit   query  int   false  "Límite"   default(20)
// @Param        offset  query  int   false  "Offset"   default(0)
// @Success      200     {object}  dto.ServiceListResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.QueryBool("active", false), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar servicio
// @Tags         services
// @Security     Bearer
// @Param        id  path  string  true  "ID del servicio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetOverride godoc
// @Summary      Fijar precio pactado cliente × servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPriceOverrideRequest  true  "Precio pactado"
// @Success      200   {object}  dto.PriceOverrideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services/overrides [put]
func (h *ServiceHandler) SetOverride(c *fiber.Ctx) error {
	var in dto.SetPriceOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetOverride(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListOverrides godoc
// @Summary      Listar precios pactados de un cliente
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        client_id  path  string  true  "ID del cliente"
// @Success      200        {array}  dto.PriceOverrideResponse
// @Router       /api/services/overrides/{client_id} [get]
func (h *ServiceHandler) ListOverrides(c *fiber.Ctx) error {
	out, err := h.uc.ListOverrides(c.Params("client_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeleteOverride godoc
// @Summary      Eliminar precio pactado
// @Tags         services
// @Security     Bearer
// @Param        client_id   path  string  true  "ID del cliente"
// @Param        service_id  path  string  true  "ID del servicio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/overrides/{client_id}/{service_id} [delete]
func (h *ServiceHandler) DeleteOverride(c *fiber.Ctx) error {
	if err := h.uc.DeleteOverride(c.Params("client_id"), c.Params("service_id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
