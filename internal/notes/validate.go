package notes

import (
	"errors"
	"strings"
)

var ErrValidation = errors.New("title and content are required")

// Validate reports ErrValidation when title or content is blank after
// trimming whitespace.
func Validate(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrValidation
	}
	return nil
}
