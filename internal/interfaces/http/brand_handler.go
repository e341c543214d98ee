package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// BrandHandler maneja las peticiones HTTP para marcas (protegido).
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
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
// @Summary      Obtener marca por ID
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "marca no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "marca no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas
// @Description  Con client_id filtra las marcas de un cliente.
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  false  "ID del cliente"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200        {object}  dto.BrandListResponse
// @Router       /api/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	clientID := c.Query("client_id")

	var (
		out *dto.BrandListResponse
		err error
	)
	if clientID != "" {
		out, err = h.uc.ListByClient(clientID, page.Limit, page.Offset)
	} else {
		out, err = h.uc.List(page.Limit, page.Offset)
	}
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar marca
// @Tags         brands
// @Security     Bearer
// @Param        id  path  string  true  "ID de la marca"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
