package dto

// Actor identidad del colaborador que ejecuta la operación, extraída del JWT
// por el middleware de auth. Viaja de los handlers a los casos de uso.
type Actor struct {
	ID         string
	Email      string
	Role       string
	SuperAdmin bool
}
