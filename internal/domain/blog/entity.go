package blog

import "time"

const DefaultAuthor = "Miswa International"

type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogInput is the create and replace payload. Author and Published fall back to
// DefaultAuthor and true when omitted.
type BlogInput struct {
	Title     string  `json:"title" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	ImageURL  *string `json:"image_url"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
}

func (in BlogInput) author() string {
	if in.Author == nil || *in.Author == "" {
		return DefaultAuthor
	}
	return *in.Author
}

func (in BlogInput) published() bool {
	return in.Published == nil || *in.Published
}
