package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// ContractHandler maneja contratos y su exportación a PDF (protegido).
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Description  Marcar status=firmado fija la fecha de firma.
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ContractResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  false  "ID del cliente"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200        {object}  dto.ContractListResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Query("client_id"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contrato
// @Tags         contracts
// @Security     Bearer
// @Param        id  path  string  true  "ID del contrato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar contrato en PDF
// @Tags         contracts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/pdf [get]
func (h *ContractHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contrato-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
