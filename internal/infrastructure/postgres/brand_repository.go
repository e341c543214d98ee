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

var _ repository.BrandRepository = (*BrandRepo)(nil)

const brandColumns = `id, client_id, name, industry, website, manages_social_media, social_networks, created_at, updated_at`

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL (usable con pool o tx).
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una marca nueva. social_networks es text[].
func (r *BrandRepo) Create(brand *entity.Brand) error {
	query := `
		INSERT INTO brands (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		brand.ID, brand.ClientID, brand.Name, brand.Industry, brand.Website,
		brand.ManagesSocialMedia, brand.SocialNetworks, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`
	b, err := scanBrand(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

// Update actualiza los campos editables de la marca (client_id no cambia).
func (r *BrandRepo) Update(brand *entity.Brand) error {
	query := `
		UPDATE brands
		SET name = $2, industry = $3, website = $4, manages_social_media = $5,
		    social_networks = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		brand.ID, brand.Name, brand.Industry, brand.Website,
		brand.ManagesSocialMedia, brand.SocialNetworks, brand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByClient lista marcas de un cliente.
func (r *BrandRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE client_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list brands by client: %w", err)
	}
	defer rows.Close()
	return collectBrands(rows)
}

// List lista todas las marcas.
func (r *BrandRepo) List(limit, offset int) ([]*entity.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	return collectBrands(rows)
}

// Delete elimina una marca.
func (r *BrandRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBrand(row pgx.Row) (*entity.Brand, error) {
	var b entity.Brand
	err := row.Scan(
		&b.ID, &b.ClientID, &b.Name, &b.Industry, &b.Website,
		&b.ManagesSocialMedia, &b.SocialNetworks, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBrands(rows pgx.Rows) ([]*entity.Brand, error) {
	var brands []*entity.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}
