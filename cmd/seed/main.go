// Siembra datos iniciales: el catálogo de servicios base y la cuenta de
// dirección (director aprobado con acceso y bandera de super admin).
//
// Uso: go run ./cmd/seed  (lee la misma configuración que la API)
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/infrastructure/postgres"
	"github.com/agenciaflow/agencia-api/pkg/config"
	"github.com/agenciaflow/agencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seedDirector(cfg, log, pool)
	seedServices(log, pool)

	log.Info().Msg("seed completado")
}

func seedDirector(cfg *config.Config, log *logger.Logger, pool postgresPool) {
	repo := postgres.NewCollaboratorRepository(pool)

	email := "direccion@agenciaflow.co"
	if len(cfg.Auth.SuperAdminEmails) > 0 {
		email = cfg.Auth.SuperAdminEmails[0]
	}

	existing, err := repo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar cuenta de dirección")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("la cuenta de dirección ya existe, no se modifica")
		return
	}

	// Contraseña inicial conocida; debe cambiarse en el primer acceso.
	hash, err := bcrypt.GenerateFromPassword([]byte("cambiar-ahora"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash")
	}

	now := time.Now()
	director := &entity.Collaborator{
		ID:               uuid.New().String(),
		Name:             "Dirección",
		Email:            email,
		PasswordHash:     string(hash),
		Role:             entity.RoleDirector,
		Status:           entity.CollaboratorApproved,
		HasSystemAccess:  true,
		IsActive:         true,
		SuperAdmin:       true,
		CompensationMode: entity.CompensationInternal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repo.Create(director); err != nil {
		log.Fatal().Err(err).Msg("crear cuenta de dirección")
	}
	log.Info().Str("email", email).Msg("cuenta de dirección creada")
}

func seedServices(log *logger.Logger, pool postgresPool) {
	repo := postgres.NewServiceRepository(pool)

	base := []struct {
		name     string
		category string
		price    string
	}{
		{"Post para redes sociales", "social-media", "80000"},
		{"Historia animada", "social-media", "60000"},
		{"Reel / video corto", "audiovisual", "250000"},
		{"Video institucional", "audiovisual", "1200000"},
		{"Diseño de logo", "diseño", "900000"},
		{"Pieza gráfica publicitaria", "diseño", "150000"},
		{"Landing page", "web", "1500000"},
		{"Mantenimiento web mensual", "web", "400000"},
	}

	now := time.Now()
	created := 0
	for _, s := range base {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			log.Fatal().Err(err).Str("servicio", s.name).Msg("precio inválido")
		}
		svc := &entity.Service{
			ID:        uuid.New().String(),
			Name:      s.name,
			Category:  s.category,
			BasePrice: price,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(svc); err != nil {
			// Nombre duplicado: el catálogo ya fue sembrado antes.
			log.Warn().Err(err).Str("servicio", s.name).Msg("servicio no creado")
			continue
		}
		created++
	}
	log.Info().Int("creados", created).Msg("catálogo de servicios sembrado")
}

// postgresPool evita repetir el tipo concreto en las funciones de seed.
type postgresPool = postgres.Querier
