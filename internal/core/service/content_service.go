package service

import (
	"github.com/nujjum/accessibility-api/internal/core/domain"
)

// ContentService serves the static catalog and localization tables. Both are
// process-wide constants; concurrent reads need no synchronization.
type ContentService struct{}

func NewContentService() *ContentService {
	return &ContentService{}
}

// Services returns the fixed services catalog verbatim.
func (*ContentService) Services() domain.ServicesCatalog {
	return domain.Catalog
}

// Translations returns the complete UI string table for lang. Unknown tags
// fall back to English; any "ar"-prefixed tag resolves to Arabic.
func (*ContentService) Translations(lang string) map[string]string {
	return domain.Translations[domain.NormalizeLang(lang)]
}
