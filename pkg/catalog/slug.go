package catalog

import (
	"strings"
)

// Slugify turns a display name into a URL-safe slug: "Best of 2023!" becomes "best-of-2023".
func Slugify(name string) string {
	var result strings.Builder

	for _, char := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9'):
			result.WriteRune(char)
		case char == ' ' || char == '-' || char == '_':
			result.WriteRune('-')
		}
	}

	slug := result.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}
