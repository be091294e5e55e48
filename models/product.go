package models

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	CategoryID           int       `json:"category_id"`
	CategorySlug         string    `json:"category,omitempty"`
	Price                float64   `json:"price"`
	Stock                int       `json:"stock"`
	InStock              bool      `json:"in_stock"`
	RequiresPrescription bool      `json:"requires_prescription"`
	Dosage               string    `json:"dosage,omitempty"`
	Manufacturer         string    `json:"manufacturer,omitempty"`
	ImageURL             string    `json:"image_url,omitempty"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
