package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
	"github.com/agenciaflow/agencia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	collabRepo repository.CollaboratorRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(collabRepo repository.CollaboratorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{collabRepo: collabRepo, jwtCfg: jwtCfg}
}

// Register da de alta un colaborador en estado pending_approval, sin acceso al
// sistema. Un usuario con canManageUsers debe aprobarlo y luego otorgarle acceso.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.CollaboratorResponse, error) {
	ve := domain.NewValidationError()
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		ve.Add("email", "email es requerido")
	}
	if len(in.Password) < 8 {
		ve.Add("password", "la contraseña debe tener al menos 8 caracteres")
	}
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name es requerido")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	existing, _ := uc.collabRepo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleFreelance
	}
	mode := in.CompensationMode
	if mode == "" {
		mode = entity.CompensationFreelancer
	}
	now := time.Now()
	collab := &entity.Collaborator{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(in.Name),
		Email:            email,
		PasswordHash:     string(hash),
		Role:             role,
		Status:           entity.CollaboratorPendingApproval,
		HasSystemAccess:  false,
		IsActive:         true,
		CompensationMode: mode,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.collabRepo.Create(collab); err != nil {
		return nil, err
	}
	return ToCollaboratorResponse(collab), nil
}

// Login verifica credenciales y estado del colaborador, y emite el JWT con
// rol, email y bandera de super admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	collab, err := uc.collabRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(collab.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !collab.CanLogin() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.TokenData{
		UserID:     collab.ID,
		Email:      collab.Email,
		Role:       collab.Role,
		SuperAdmin: collab.SuperAdmin,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToCollaboratorResponse(collab),
	}, nil
}

// ToCollaboratorResponse convierte la entidad al DTO público (sin hash).
func ToCollaboratorResponse(c *entity.Collaborator) *dto.CollaboratorResponse {
	if c == nil {
		return nil
	}
	out := &dto.CollaboratorResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Role:             c.Role,
		Status:           c.Status,
		HasSystemAccess:  c.HasSystemAccess,
		IsActive:         c.IsActive,
		CompensationMode: c.CompensationMode,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if !c.WeeklySalary.IsZero() {
		out.WeeklySalary = c.WeeklySalary.String()
	}
	if !c.BaseActivityRate.IsZero() {
		out.BaseActivityRate = c.BaseActivityRate.String()
	}
	return out
}
