package career

import "errors"

var ErrCareerNotFound = errors.New("career not found")
