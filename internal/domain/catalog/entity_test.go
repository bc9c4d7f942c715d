package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miswa/internal/pkg/validator"
)

func TestCatalogInput_RequiredFields(t *testing.T) {
	t.Parallel()

	errs := validator.Validate(CatalogInput{})
	assert.Equal(t, map[string]string{"title": "required", "description": "required", "category": "required"}, errs)

	assert.Nil(t, validator.Validate(CatalogInput{Title: "Summer", Description: "Lookbook", Category: "kids"}))
}
