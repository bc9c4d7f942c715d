package linkpage

const (
	myLittleTalesLogo = "https://customer-assets.emergentagent.com/job_ece25fd4-86f7-4b5b-899a-e81995d5ad91/artifacts/okjqwqlr_mlt_logo_transparent_1%20%281%29.png"
	tyneeTotsLogo     = "https://customer-assets.emergentagent.com/job_ece25fd4-86f7-4b5b-899a-e81995d5ad91/artifacts/8rg2l7k3_Untitled%20design%20%282%29.png"

	instagramURL = "https://www.instagram.com/mylittletalestoys"
	facebookURL  = "https://www.facebook.com/MyLittleTalesToys"
	whatsappURL  = "https://wa.me/918199848535?text=Hi!"
)

func ptr(s string) *string { return &s }

func defaultPages() []CreateInput {
	mltReview := "https://www.google.com/maps/search/?api=1&query=MyLittleTales+Toys+Review"
	ttReview := "https://www.google.com/maps/search/?api=1&query=Tynee+Tots+Review"

	return []CreateInput{
		{
			BrandSlug:       "mylittletales",
			BrandName:       "MyLittleTales",
			Tagline:         "Educational Wooden Toys for Growing Minds",
			Description:     "Crafting premium wooden educational toys designed to inspire creativity, learning, and development in children.",
			LogoURL:         myLittleTalesLogo,
			WebsiteURL:      ptr("https://www.mylittletales.com"),
			InstagramURL:    ptr(instagramURL),
			FacebookURL:     ptr(facebookURL),
			WhatsappURL:     ptr(whatsappURL),
			GoogleReviewURL: ptr(mltReview),
			QRCodes: []QRCode{
				{Title: "Google Review", URL: mltReview},
				{Title: "Instagram", URL: instagramURL},
			},
		},
		{
			BrandSlug:       "tyneetots",
			BrandName:       "Tynee Tots",
			Tagline:         "Premium Kids Clothing & Accessories",
			Description:     "Delightful collection of premium children's wear and accessories. We focus on comfort, style, and quality to ensure your little ones look adorable while feeling great.",
			LogoURL:         tyneeTotsLogo,
			WebsiteURL:      ptr("https://www.tyneetots.com"),
			InstagramURL:    ptr(instagramURL),
			FacebookURL:     ptr(facebookURL),
			WhatsappURL:     ptr(whatsappURL),
			GoogleReviewURL: ptr(ttReview),
			QRCodes: []QRCode{
				{Title: "Google Review", URL: ttReview},
				{Title: "Instagram", URL: instagramURL},
			},
			GradientFrom:   "from-purple-400",
			GradientTo:     "to-indigo-500",
			BgGradientFrom: "from-purple-50",
			BgGradientVia:  "via-white",
			BgGradientTo:   "to-indigo-50/30",
		},
	}
}
