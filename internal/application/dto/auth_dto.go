package dto

// RegisterRequest alta de colaborador (queda pendiente de aprobación).
type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	CompensationMode string `json:"compensation_mode"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT + datos del colaborador autenticado.
type LoginResponse struct {
	Token string               `json:"token"`
	User  CollaboratorResponse `json:"user"`
}
