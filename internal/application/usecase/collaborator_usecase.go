package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/agenciaflow/agencia-api/internal/application/auth"
	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// CollaboratorUseCase gestiona el ciclo de vida de colaboradores: aprobación,
// acceso al sistema, activación y cambio directo de contraseña.
type CollaboratorUseCase struct {
	repo repository.CollaboratorRepository
	perm *permission.Checker
}

// NewCollaboratorUseCase construye el caso de uso.
func NewCollaboratorUseCase(repo repository.CollaboratorRepository, perm *permission.Checker) *CollaboratorUseCase {
	return &CollaboratorUseCase{repo: repo, perm: perm}
}

// GetByID obtiene un colaborador por ID.
func (uc *CollaboratorUseCase) GetByID(id string) (*dto.CollaboratorResponse, error) {
	collab, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, nil
	}
	return auth.ToCollaboratorResponse(collab), nil
}

// List lista colaboradores; status opcional filtra por estado de aprobación.
func (uc *CollaboratorUseCase) List(status string, limit, offset int) (*dto.CollaboratorListResponse, error) {
	var (
		collabs []*entity.Collaborator
		err     error
	)
	if status != "" {
		collabs, err = uc.repo.ListByStatus(status, limit, offset)
	} else {
		collabs, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CollaboratorResponse, 0, len(collabs))
	for _, c := range collabs {
		items = append(items, *auth.ToCollaboratorResponse(c))
	}
	return &dto.CollaboratorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Approve aprueba o rechaza un colaborador pendiente. Requiere canManageUsers.
func (uc *CollaboratorUseCase) Approve(actor dto.Actor, id string, approve bool) (*dto.CollaboratorResponse, error) {
	if !uc.can(actor, permission.CanManageUsers) {
		return nil, domain.ErrForbidden
	}
	collab, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, domain.ErrNotFound
	}
	if collab.Status != entity.CollaboratorPendingApproval && collab.Status != entity.CollaboratorPendingEmail {
		return nil, domain.ErrConflict
	}
	if approve {
		collab.Status = entity.CollaboratorApproved
	} else {
		collab.Status = entity.CollaboratorRejected
		collab.HasSystemAccess = false
	}
	collab.UpdatedAt = time.Now()
	if err := uc.repo.Update(collab); err != nil {
		return nil, err
	}
	return auth.ToCollaboratorResponse(collab), nil
}

// SetSystemAccess otorga o revoca el acceso al sistema. Requiere
// canManageUsers; otorgar solo es posible si el colaborador está aprobado.
func (uc *CollaboratorUseCase) SetSystemAccess(actor dto.Actor, id string, grant bool) (*dto.CollaboratorResponse, error) {
	if !uc.can(actor, permission.CanManageUsers) {
		return nil, domain.ErrForbidden
	}
	collab, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, domain.ErrNotFound
	}
	if grant && collab.Status != entity.CollaboratorApproved {
		ve := domain.NewValidationError()
		ve.Add("status", "solo un colaborador aprobado puede recibir acceso al sistema")
		return nil, ve
	}
	collab.HasSystemAccess = grant
	collab.UpdatedAt = time.Now()
	if err := uc.repo.Update(collab); err != nil {
		return nil, err
	}
	return auth.ToCollaboratorResponse(collab), nil
}

// SetActive activa o desactiva al colaborador sin tocar su aprobación.
func (uc *CollaboratorUseCase) SetActive(actor dto.Actor, id string, active bool) (*dto.CollaboratorResponse, error) {
	if !uc.can(actor, permission.CanManageUsers) {
		return nil, domain.ErrForbidden
	}
	collab, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, domain.ErrNotFound
	}
	collab.IsActive = active
	collab.UpdatedAt = time.Now()
	if err := uc.repo.Update(collab); err != nil {
		return nil, err
	}
	return auth.ToCollaboratorResponse(collab), nil
}

// ChangePasswordDirectly fija una contraseña nueva sin pedir la anterior.
// Requiere canChangePasswordsDirectly (solo director en la matriz por defecto).
func (uc *CollaboratorUseCase) ChangePasswordDirectly(actor dto.Actor, id, newPassword string) error {
	if !uc.can(actor, permission.CanChangePasswordsDirectly) {
		return domain.ErrForbidden
	}
	if len(newPassword) < 8 {
		ve := domain.NewValidationError()
		ve.Add("new_password", "la contraseña debe tener al menos 8 caracteres")
		return ve
	}
	collab, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if collab == nil {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePasswordHash(id, string(hash))
}

func (uc *CollaboratorUseCase) can(actor dto.Actor, key permission.Key) bool {
	return uc.perm.HasPermission(
		permission.Role(actor.Role),
		key,
		permission.Subject{Email: actor.Email, SuperAdmin: actor.SuperAdmin},
	)
}
