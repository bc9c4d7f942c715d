package brand

const (
	myLittleTalesLogo = "https://customer-assets.emergentagent.com/job_ece25fd4-86f7-4b5b-899a-e81995d5ad91/artifacts/okjqwqlr_mlt_logo_transparent_1%20%281%29.png"
	tyneeTotsLogo     = "https://customer-assets.emergentagent.com/job_ece25fd4-86f7-4b5b-899a-e81995d5ad91/artifacts/8rg2l7k3_Untitled%20design%20%282%29.png"
)

func defaultBrands() []BrandInput {
	mlt, tt := myLittleTalesLogo, tyneeTotsLogo
	return []BrandInput{
		{
			Name:        "MyLittleTales",
			Tagline:     "Educational Wooden Toys for Growing Minds",
			Description: "MyLittleTales specializes in crafting premium wooden educational toys designed to inspire creativity, learning, and development in children. Our products combine traditional craftsmanship with modern educational principles.",
			Website:     "https://mylittletales.com",
			LogoURL:     myLittleTalesLogo,
			ImageURL:    &mlt,
		},
		{
			Name:        "Tynee Tots",
			Tagline:     "Premium Kids Clothing & Accessories",
			Description: "Tynee Tots offers a delightful collection of premium children's wear and accessories. We focus on comfort, style, and quality to ensure your little ones look adorable while feeling great.",
			Website:     "https://tyneetots.com",
			LogoURL:     tyneeTotsLogo,
			ImageURL:    &tt,
		},
	}
}
