package company

import "time"

const (
	collectionName = "company_info"
	documentKey    = "company_info"
)

type CompanyInfo struct {
	ID        string    `json:"id"`
	About     string    `json:"about"`
	Mission   string    `json:"mission"`
	Vision    string    `json:"vision"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Patch struct {
	About   *string `json:"about,omitempty"`
	Mission *string `json:"mission,omitempty"`
	Vision  *string `json:"vision,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty"`
}

// Defaults is what GET returns before the company info is first saved.
func Defaults() CompanyInfo {
	return CompanyInfo{
		ID:        documentKey,
		About:     "Miswa International is a leading manufacturer and exporter of premium kids' products, specializing in educational toys and children's wear.",
		Mission:   "To create high-quality, safe, and engaging products that nurture children's growth and development while bringing joy to families worldwide.",
		Vision:    "To become the most trusted global brand in children's products, known for innovation, quality, and commitment to child development.",
		Phone:     "+1-800-MISWA-INT",
		Email:     "info@miswainternational.com",
		Address:   "123 Manufacturing District, Industrial Park, New Delhi, India",
		UpdatedAt: time.Now().UTC(),
	}
}
