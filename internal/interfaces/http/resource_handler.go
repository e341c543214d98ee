package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// maxUploadBytes tope de tamaño de archivo (100 MB, videos incluidos).
const maxUploadBytes = 100 << 20

// ResourceHandler maneja recursos y su flujo de revisión (protegido).
type ResourceHandler struct {
	uc       *usecase.ResourceUseCase
	reviewUC *review.ReviewResourceUseCase
}

// NewResourceHandler construye el handler.
func NewResourceHandler(uc *usecase.ResourceUseCase, reviewUC *review.ReviewResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc, reviewUC: reviewUC}
}

// Upload godoc
// @Summary      Subir recurso
// @Description  Multipart: campo "file" con el archivo y campos de formulario con los metadatos. Para entregas por enlace se omite el archivo y se envía external_url.
// @Tags         resources
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    false  "Archivo"
// @Param        task_id      formData  string  false  "Tarea de origen"
// @Param        brand_id     formData  string  true   "Marca"
// @Param        name         formData  string  true   "Nombre del recurso"
// @Param        type         formData  string  true   "Tipo (image, video, audio, document, archive, url)"
// @Param        external_url formData  string  false  "URL externa"
// @Param        platform     formData  string  false  "Plataforma del enlace"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resources [post]
func (h *ResourceHandler) Upload(c *fiber.Ctx) error {
	in := dto.UploadResourceRequest{
		TaskID:      c.FormValue("task_id"),
		BrandID:     c.FormValue("brand_id"),
		Name:        c.FormValue("name"),
		Type:        c.FormValue("type"),
		ExternalURL: c.FormValue("external_url"),
		Platform:    c.FormValue("platform"),
		Description: c.FormValue("description"),
	}

	var (
		data        []byte
		filename    string
		contentType string
	)
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if fh.Size > maxUploadBytes {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
		}
		filename = fh.Filename
		contentType = fh.Header.Get("Content-Type")
	}

	out, err := h.uc.Upload(c.Context(), GetActor(c), in, data, filename, contentType)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recurso"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recursos
// @Description  Filtra por brand_id o task_id.
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        brand_id  query  string  false  "ID de la marca"
// @Param        task_id   query  string  false  "ID de la tarea"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ResourceListResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	switch {
	case c.Query("task_id") != "":
		out, err := h.uc.ListByTask(c.Query("task_id"))
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case c.Query("brand_id") != "":
		out, err := h.uc.ListByBrand(c.Query("brand_id"), page.Limit, page.Offset)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "MISSING_FILTER",
			Message: "brand_id o task_id es requerido",
		})
	}
}

// Review godoc
// @Summary      Revisar recurso
// @Description  Aprueba, pide cambios o rechaza. Requiere observaciones para necesita-cambios y rechazado; esos estados generan una tarea de corrección en la misma transacción.
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del recurso"
// @Param        body  body  dto.ReviewResourceRequest  true  "Decisión de revisión"
// @Success      200   {object}  dto.ReviewResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/resources/{id}/review [post]
func (h *ResourceHandler) Review(c *fiber.Ctx) error {
	var in dto.ReviewResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.reviewUC.ReviewResource(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de revisión de un recurso
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del recurso"
// @Success      200  {array}  dto.ReviewHistoryEntry
// @Router       /api/resources/{id}/history [get]
func (h *ResourceHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recurso
// @Description  Borra también el archivo del storage si existe.
// @Tags         resources
// @Security     Bearer
// @Param        id  path  string  true  "ID del recurso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
