package dto

// DashboardResponse agregados para el panel principal.
type DashboardResponse struct {
	ActiveClients    int            `json:"active_clients"`
	Brands           int            `json:"brands"`
	TasksByStatus    map[string]int `json:"tasks_by_status"`
	PendingResources int            `json:"pending_resources"`
	SignedContracts  int            `json:"signed_contracts"`
}

// BrandTaskLoadResponse carga de tareas por estado para una marca,
// junto con el límite del plan del cliente.
type BrandTaskLoadResponse struct {
	BrandID       string         `json:"brand_id"`
	TasksByStatus map[string]int `json:"tasks_by_status"`
	ActiveTasks   int            `json:"active_tasks"`
	PlanLimit     int            `json:"plan_limit"`
}
