package linkpage

import "time"

const DefaultButtonText = "Visit"

const (
	DefaultGradientFrom   = "from-coral-400"
	DefaultGradientTo     = "to-orange-500"
	DefaultBgGradientFrom = "from-orange-50"
	DefaultBgGradientVia  = "via-white"
	DefaultBgGradientTo   = "to-orange-50/30"
)

type QRCode struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

// LinkPage is a brand's link-in-bio page, addressed by BrandSlug.
type LinkPage struct {
	ID          string `json:"id"`
	BrandSlug   string `json:"brand_slug"`
	BrandName   string `json:"brand_name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`

	WebsiteURL       *string `json:"website_url"`
	WebsiteText      string  `json:"website_text"`
	InstagramURL     *string `json:"instagram_url"`
	InstagramText    string  `json:"instagram_text"`
	FacebookURL      *string `json:"facebook_url"`
	FacebookText     string  `json:"facebook_text"`
	WhatsappURL      *string `json:"whatsapp_url"`
	WhatsappText     string  `json:"whatsapp_text"`
	GoogleReviewURL  *string `json:"google_review_url"`
	GoogleReviewText string  `json:"google_review_text"`

	QRCodes []QRCode `json:"qr_codes"`

	GradientFrom       string  `json:"gradient_from"`
	GradientTo         string  `json:"gradient_to"`
	BgGradientFrom     string  `json:"bg_gradient_from"`
	BgGradientVia      string  `json:"bg_gradient_via"`
	BgGradientTo       string  `json:"bg_gradient_to"`
	BackgroundImageURL *string `json:"background_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput carries a new page. Empty button texts and gradients take the defaults.
type CreateInput struct {
	BrandSlug   string `json:"brand_slug" validate:"required"`
	BrandName   string `json:"brand_name" validate:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`

	WebsiteURL       *string `json:"website_url"`
	WebsiteText      string  `json:"website_text"`
	InstagramURL     *string `json:"instagram_url"`
	InstagramText    string  `json:"instagram_text"`
	FacebookURL      *string `json:"facebook_url"`
	FacebookText     string  `json:"facebook_text"`
	WhatsappURL      *string `json:"whatsapp_url"`
	WhatsappText     string  `json:"whatsapp_text"`
	GoogleReviewURL  *string `json:"google_review_url"`
	GoogleReviewText string  `json:"google_review_text"`

	QRCodes []QRCode `json:"qr_codes" validate:"dive"`

	GradientFrom       string  `json:"gradient_from"`
	GradientTo         string  `json:"gradient_to"`
	BgGradientFrom     string  `json:"bg_gradient_from"`
	BgGradientVia      string  `json:"bg_gradient_via"`
	BgGradientTo       string  `json:"bg_gradient_to"`
	BackgroundImageURL *string `json:"background_image_url"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	BrandName   *string `json:"brand_name,omitempty"`
	Tagline     *string `json:"tagline,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`

	WebsiteURL       *string `json:"website_url,omitempty"`
	WebsiteText      *string `json:"website_text,omitempty"`
	InstagramURL     *string `json:"instagram_url,omitempty"`
	InstagramText    *string `json:"instagram_text,omitempty"`
	FacebookURL      *string `json:"facebook_url,omitempty"`
	FacebookText     *string `json:"facebook_text,omitempty"`
	WhatsappURL      *string `json:"whatsapp_url,omitempty"`
	WhatsappText     *string `json:"whatsapp_text,omitempty"`
	GoogleReviewURL  *string `json:"google_review_url,omitempty"`
	GoogleReviewText *string `json:"google_review_text,omitempty"`

	QRCodes *[]QRCode `json:"qr_codes,omitempty" validate:"omitempty,dive"`

	GradientFrom       *string `json:"gradient_from,omitempty"`
	GradientTo         *string `json:"gradient_to,omitempty"`
	BgGradientFrom     *string `json:"bg_gradient_from,omitempty"`
	BgGradientVia      *string `json:"bg_gradient_via,omitempty"`
	BgGradientTo       *string `json:"bg_gradient_to,omitempty"`
	BackgroundImageURL *string `json:"background_image_url,omitempty"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (in CreateInput) page(id string, now time.Time) *LinkPage {
	qr := in.QRCodes
	if qr == nil {
		qr = []QRCode{}
	}
	return &LinkPage{
		ID:                 id,
		BrandSlug:          in.BrandSlug,
		BrandName:          in.BrandName,
		Tagline:            in.Tagline,
		Description:        in.Description,
		LogoURL:            in.LogoURL,
		WebsiteURL:         in.WebsiteURL,
		WebsiteText:        orDefault(in.WebsiteText, DefaultButtonText),
		InstagramURL:       in.InstagramURL,
		InstagramText:      orDefault(in.InstagramText, DefaultButtonText),
		FacebookURL:        in.FacebookURL,
		FacebookText:       orDefault(in.FacebookText, DefaultButtonText),
		WhatsappURL:        in.WhatsappURL,
		WhatsappText:       orDefault(in.WhatsappText, DefaultButtonText),
		GoogleReviewURL:    in.GoogleReviewURL,
		GoogleReviewText:   orDefault(in.GoogleReviewText, DefaultButtonText),
		QRCodes:            qr,
		GradientFrom:       orDefault(in.GradientFrom, DefaultGradientFrom),
		GradientTo:         orDefault(in.GradientTo, DefaultGradientTo),
		BgGradientFrom:     orDefault(in.BgGradientFrom, DefaultBgGradientFrom),
		BgGradientVia:      orDefault(in.BgGradientVia, DefaultBgGradientVia),
		BgGradientTo:       orDefault(in.BgGradientTo, DefaultBgGradientTo),
		BackgroundImageURL: in.BackgroundImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
