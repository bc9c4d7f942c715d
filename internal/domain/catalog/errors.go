package catalog

import "errors"

var ErrCatalogNotFound = errors.New("catalog not found")
