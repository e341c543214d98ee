package entity

import "time"

// Brand es la identidad comercial de un cliente. Un cliente puede tener varias
// marcas; cada marca pertenece a exactamente un cliente y agrupa tareas y recursos.
type Brand struct {
	ID                 string
	ClientID           string
	Name               string
	Industry           string
	Website            string
	ManagesSocialMedia bool
	SocialNetworks     []string // instagram, facebook, tiktok, linkedin...
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
