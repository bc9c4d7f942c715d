package payment

import "time"

const (
	collectionName = "upi_payment_info"
	documentKey    = "upi_payment_info"
)

// UPIPaymentInfo is the bank-transfer information shown on the checkout page.
type UPIPaymentInfo struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	BrandName   string    `json:"brand_name"`
	GSTNumber   string    `json:"gst_number"`
	UPIID       string    `json:"upi_id"`
	QRCodeURL   string    `json:"qr_code_url"`
	LogoURL     string    `json:"logo_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Patch struct {
	CompanyName *string `json:"company_name,omitempty"`
	BrandName   *string `json:"brand_name,omitempty"`
	GSTNumber   *string `json:"gst_number,omitempty"`
	UPIID       *string `json:"upi_id,omitempty"`
	QRCodeURL   *string `json:"qr_code_url,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

func Defaults() UPIPaymentInfo {
	return UPIPaymentInfo{
		ID:          documentKey,
		CompanyName: "Miswa International",
		UpdatedAt:   time.Now().UTC(),
	}
}

// Image selects which stored image an upload replaces.
type Image int

const (
	ImageLogo Image = iota
	ImageQRCode
)

func (img Image) current(info *UPIPaymentInfo) string {
	if img == ImageLogo {
		return info.LogoURL
	}
	return info.QRCodeURL
}

func (img Image) patch(url string) Patch {
	if img == ImageLogo {
		return Patch{LogoURL: &url}
	}
	return Patch{QRCodeURL: &url}
}
