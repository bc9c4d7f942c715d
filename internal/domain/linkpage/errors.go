package linkpage

import "errors"

var (
	ErrLinkPageNotFound = errors.New("link page not found")
	ErrSlugTaken        = errors.New("brand slug already has a link page")
)
