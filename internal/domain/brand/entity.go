package brand

import "time"

type Brand struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	LogoURL     string     `json:"logo_url"`
	ImageURL    *string    `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// BrandInput is the body of create and replace requests.
type BrandInput struct {
	Name        string  `json:"name" validate:"required"`
	Tagline     string  `json:"tagline" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Website     string  `json:"website" validate:"required"`
	LogoURL     string  `json:"logo_url" validate:"required"`
	ImageURL    *string `json:"image_url"`
}
