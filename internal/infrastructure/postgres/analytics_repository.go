package postgres

import (
	"context"
	"fmt"

	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para los paneles.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analytics. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardCounts calcula los contadores del panel principal.
func (r *AnalyticsRepo) GetDashboardCounts() (*repository.DashboardCounts, error) {
	ctx := context.Background()
	counts := &repository.DashboardCounts{TasksByStatus: make(map[string]int)}

	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE status = $1`, entity.ClientStatusActivo,
	).Scan(&counts.ActiveClients)
	if err != nil {
		return nil, fmt.Errorf("count active clients: %w", err)
	}

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM brands`).Scan(&counts.Brands); err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}

	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan task count: %w", err)
		}
		counts.TasksByStatus[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM resources WHERE status = $1`, entity.ResourceStatusPendiente,
	).Scan(&counts.PendingResources)
	if err != nil {
		return nil, fmt.Errorf("count pending resources: %w", err)
	}

	err = r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM contracts WHERE status = $1`, entity.ContractStatusFirmado,
	).Scan(&counts.SignedContracts)
	if err != nil {
		return nil, fmt.Errorf("count signed contracts: %w", err)
	}

	return counts, nil
}

// GetTaskCountByBrand devuelve las tareas de una marca agrupadas por estado.
func (r *AnalyticsRepo) GetTaskCountByBrand(brandID string) (map[string]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT status, COUNT(*) FROM tasks WHERE brand_id = $1 GROUP BY status`, brandID)
	if err != nil {
		return nil, fmt.Errorf("count tasks by brand: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan brand task count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}
