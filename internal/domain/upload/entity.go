package upload

import (
	"path"
	"strings"
	"time"
)

// Class decides where a file is stored and which extensions it accepts.
type Class string

const (
	ClassCV     Class = "cv"
	ClassUPI    Class = "upi"
	ClassAssets Class = "assets"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

var allowedExtensions = map[Class][]string{
	ClassCV:     {".pdf", ".doc", ".docx"},
	ClassUPI:    imageExtensions,
	ClassAssets: append(append([]string{}, imageExtensions...), ".pdf"),
}

// Classes lists every class in a stable order.
var Classes = []Class{ClassCV, ClassUPI, ClassAssets}

func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := allowedExtensions[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Public reports whether files of this class may be served without authentication.
// CVs carry personal data and are only reachable through their inquiry.
func (c Class) Public() bool {
	return c != ClassCV
}

func (c Class) Allows(ext string) bool {
	for _, e := range allowedExtensions[c] {
		if e == ext {
			return true
		}
	}
	return false
}

func (c Class) key(filename string) string {
	return path.Join(string(c), filename)
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// ContentTypeFor maps a filename's extension to its media type.
func ContentTypeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Reference is what callers store to point at an uploaded file.
type Reference struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// FileInfo describes a stored file for the files management screen.
type FileInfo struct {
	Category   Class     `json:"category"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}
