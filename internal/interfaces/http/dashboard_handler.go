package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/usecase"
)

// DashboardHandler agregados de los paneles (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Contadores del panel principal
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BrandTaskLoad godoc
// @Summary      Carga de tareas de una marca
// @Description  Tareas por estado y límite del plan del cliente.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        brand_id  path  string  true  "ID de la marca"
// @Success      200  {object}  dto.BrandTaskLoadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/brands/{brand_id} [get]
func (h *DashboardHandler) BrandTaskLoad(c *fiber.Ctx) error {
	out, err := h.uc.GetBrandTaskLoad(c.Params("brand_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
