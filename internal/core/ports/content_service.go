package ports

import "github.com/nujjum/accessibility-api/internal/core/domain"

// ContentService serves the static catalog and localization tables. Both are
// in-process constants; no operation can fail.
type ContentService interface {
	// Services returns the fixed services catalog, verbatim.
	Services() domain.ServicesCatalog

	// Translations returns the complete UI string table for lang, normalized
	// to a supported language (unknown tags fall back to English).
	Translations(lang string) map[string]string
}
