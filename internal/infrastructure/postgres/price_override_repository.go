package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

var _ repository.PriceOverrideRepository = (*PriceOverrideRepo)(nil)

// PriceOverrideRepo implementación del puerto PriceOverrideRepository sobre PostgreSQL.
type PriceOverrideRepo struct {
	q Querier
}

// NewPriceOverrideRepository construye el adaptador de precios pactados. Pasar pool o tx (Querier).
func NewPriceOverrideRepository(q Querier) *PriceOverrideRepo {
	return &PriceOverrideRepo{q: q}
}

// Upsert crea o reemplaza el precio pactado del cliente para un servicio
// (constraint único client_id + service_id).
func (r *PriceOverrideRepo) Upsert(override *entity.PriceOverride) error {
	query := `
		INSERT INTO price_overrides (id, client_id, service_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id, service_id) DO UPDATE SET price = EXCLUDED.price`
	_, err := r.q.Exec(context.Background(), query,
		override.ID, override.ClientID, override.ServiceID, override.Price, override.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert price override: %w", err)
	}
	return nil
}

// GetByClientAndService devuelve (nil, nil) si el cliente no tiene precio pactado.
func (r *PriceOverrideRepo) GetByClientAndService(clientID, serviceID string) (*entity.PriceOverride, error) {
	query := `
		SELECT id, client_id, service_id, price, created_at
		FROM price_overrides WHERE client_id = $1 AND service_id = $2`
	var o entity.PriceOverride
	err := r.q.QueryRow(context.Background(), query, clientID, serviceID).Scan(
		&o.ID, &o.ClientID, &o.ServiceID, &o.Price, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price override: %w", err)
	}
	return &o, nil
}

// ListByClient lista los precios pactados de un cliente.
func (r *PriceOverrideRepo) ListByClient(clientID string) ([]*entity.PriceOverride, error) {
	query := `
		SELECT id, client_id, service_id, price, created_at
		FROM price_overrides WHERE client_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list price overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*entity.PriceOverride
	for rows.Next() {
		var o entity.PriceOverride
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ServiceID, &o.Price, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price override: %w", err)
		}
		overrides = append(overrides, &o)
	}
	return overrides, rows.Err()
}

// Delete elimina el precio pactado de un cliente para un servicio.
func (r *PriceOverrideRepo) Delete(clientID, serviceID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM price_overrides WHERE client_id = $1 AND service_id = $2`, clientID, serviceID)
	if err != nil {
		return fmt.Errorf("delete price override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
