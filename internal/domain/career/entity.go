package career

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type Career struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type CareerInput struct {
	Title        string       `json:"title" validate:"required"`
	Department   string       `json:"department" validate:"required"`
	Location     string       `json:"location" validate:"required"`
	Type         string       `json:"type" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Requirements Requirements `json:"requirements" validate:"required"`
	Active       *bool        `json:"active"`
}

func (in CareerInput) active() bool {
	return in.Active == nil || *in.Active
}

// Requirements decodes either a string or a list of strings. A list is stored
// newline-joined.
type Requirements string

func (r *Requirements) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Requirements(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("requirements must be a string or a list of strings")
	}
	*r = Requirements(strings.Join(list, "\n"))
	return nil
}
