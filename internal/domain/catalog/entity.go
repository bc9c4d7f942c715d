package catalog

import "time"

type Catalog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	PDFURL      *string    `json:"pdf_url"`
	ImageURL    *string    `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type CatalogInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	PDFURL      *string `json:"pdf_url"`
	ImageURL    *string `json:"image_url"`
}
