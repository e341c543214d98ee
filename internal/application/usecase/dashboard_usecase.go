package usecase

import (
	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// DashboardUseCase agrega los contadores del panel principal.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	brandRepo     repository.BrandRepository
	clientRepo    repository.ClientRepository
	planLimits    tasks.PlanResolver
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	brandRepo repository.BrandRepository,
	clientRepo repository.ClientRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		brandRepo:     brandRepo,
		clientRepo:    clientRepo,
		planLimits:    tasks.DefaultPlanLimits,
	}
}

// GetDashboard devuelve los agregados del panel.
func (uc *DashboardUseCase) GetDashboard() (*dto.DashboardResponse, error) {
	counts, err := uc.analyticsRepo.GetDashboardCounts()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ActiveClients:    counts.ActiveClients,
		Brands:           counts.Brands,
		TasksByStatus:    counts.TasksByStatus,
		PendingResources: counts.PendingResources,
		SignedContracts:  counts.SignedContracts,
	}, nil
}

// GetBrandTaskLoad devuelve la carga de tareas de una marca y el límite del
// plan del cliente dueño.
func (uc *DashboardUseCase) GetBrandTaskLoad(brandID string) (*dto.BrandTaskLoadResponse, error) {
	brand, err := uc.brandRepo.GetByID(brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(brand.ClientID)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.analyticsRepo.GetTaskCountByBrand(brandID)
	if err != nil {
		return nil, err
	}

	active := 0
	for status, n := range byStatus {
		if status != entity.TaskStatusEntregado {
			active += n
		}
	}
	plan := ""
	if client != nil {
		plan = client.Plan
	}
	return &dto.BrandTaskLoadResponse{
		BrandID:       brandID,
		TasksByStatus: byStatus,
		ActiveTasks:   active,
		PlanLimit:     uc.planLimits(plan),
	}, nil
}
