package repository

// DashboardCounts agregados para el panel principal.
type DashboardCounts struct {
	ActiveClients    int
	Brands           int
	TasksByStatus    map[string]int
	PendingResources int
	SignedContracts  int
}

// AnalyticsRepository puerto de consultas agregadas (solo lectura).
type AnalyticsRepository interface {
	GetDashboardCounts() (*DashboardCounts, error)
	GetTaskCountByBrand(brandID string) (map[string]int, error)
}
