package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrNoCV            = errors.New("inquiry has no cv")
)
