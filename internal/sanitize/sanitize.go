package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all HTML from user-submitted text before it is stored.
// Feedback, descriptions and similar fields are rendered back to other
// users, so nothing markup-like survives.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
