package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miswa/internal/pkg/validator"
)

func TestBrandInput_RequiredFields(t *testing.T) {
	t.Parallel()

	errs := validator.Validate(BrandInput{Name: "Tynee Tots"})
	for _, field := range []string{"tagline", "description", "website", "logo_url"} {
		assert.Equal(t, "required", errs[field], field)
	}
	assert.NotContains(t, errs, "image_url")

	assert.Nil(t, validator.Validate(BrandInput{
		Name:        "Tynee Tots",
		Tagline:     "Little outfits",
		Description: "Kidswear",
		Website:     "https://tyneetots.example",
		LogoURL:     "/api/uploads/assets/logo.png",
	}))
}
