package dto

import "time"

// CreateBrandRequest alta de marca para un cliente.
type CreateBrandRequest struct {
	ClientID           string   `json:"client_id"`
	Name               string   `json:"name"`
	Industry           string   `json:"industry"`
	Website            string   `json:"website"`
	ManagesSocialMedia bool     `json:"manages_social_media"`
	SocialNetworks     []string `json:"social_networks"`
}

// UpdateBrandRequest actualización parcial de marca.
type UpdateBrandRequest struct {
	Name               *string   `json:"name"`
	Industry           *string   `json:"industry"`
	Website            *string   `json:"website"`
	ManagesSocialMedia *bool     `json:"manages_social_media"`
	SocialNetworks     *[]string `json:"social_networks"`
}

// BrandResponse representación de una marca.
type BrandResponse struct {
	ID                 string    `json:"id"`
	ClientID           string    `json:"client_id"`
	Name               string    `json:"name"`
	Industry           string    `json:"industry"`
	Website            string    `json:"website"`
	ManagesSocialMedia bool      `json:"manages_social_media"`
	SocialNetworks     []string  `json:"social_networks"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BrandListResponse listado paginado.
type BrandListResponse struct {
	Items []BrandResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
