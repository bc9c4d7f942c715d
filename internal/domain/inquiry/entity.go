package inquiry

import "time"

const (
	TypeGeneral   = "general"
	TypeWholesale = "wholesale"
	TypeCareer    = "career"
)

type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	Subject     *string   `json:"subject"`
	Message     string    `json:"message"`
	InquiryType string    `json:"inquiry_type"`
	CVFilename  *string   `json:"cv_filename"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasCV reports whether a CV was attached on submission.
func (i *Inquiry) HasCV() bool {
	return i.CVFilename != nil && *i.CVFilename != ""
}

// CreateInput binds from JSON or from multipart form fields.
type CreateInput struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Email       string  `json:"email" form:"email" validate:"required,email"`
	Phone       *string `json:"phone" form:"phone"`
	Company     *string `json:"company" form:"company"`
	Subject     *string `json:"subject" form:"subject"`
	Message     string  `json:"message" form:"message" validate:"required"`
	InquiryType string  `json:"inquiry_type" form:"inquiry_type" validate:"omitempty,oneof=general wholesale career"`
}

func (in CreateInput) inquiryType() string {
	if in.InquiryType == "" {
		return TypeGeneral
	}
	return in.InquiryType
}
