package service

import (
	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// The typed domain model and the loosely-typed storage documents are two
// distinct layers. These functions are the only bridge between them; field
// names follow the wire/storage contract (snake_case keys).

func toDomainUser(in ports.CreateProfileInput) domain.PodUser {
	types := make([]domain.DisabilityType, 0, len(in.Profile.DisabilityType))
	for _, t := range in.Profile.DisabilityType {
		types = append(types, domain.DisabilityType(t))
	}
	return domain.PodUser{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Country: in.Country,
		City:    in.City,
		Profile: domain.DisabilityProfile{
			DisabilityType: types,
			PreferredMode:  domain.PreferredMode(in.Profile.PreferredMode),
			Language:       domain.Language(in.Profile.Language),
			HighContrast:   in.Profile.HighContrast,
			LargeText:      in.Profile.LargeText,
		},
		DocumentsSubmitted: in.DocumentsSubmitted,
	}
}

func userDocument(u domain.PodUser) ports.Document {
	types := make([]string, 0, len(u.Profile.DisabilityType))
	for _, t := range u.Profile.DisabilityType {
		types = append(types, string(t))
	}
	docs := u.DocumentsSubmitted
	if docs == nil {
		docs = []string{}
	}
	return ports.Document{
		"name":    u.Name,
		"email":   u.Email,
		"phone":   u.Phone,
		"country": u.Country,
		"city":    u.City,
		"profile": map[string]any{
			"disability_type": types,
			"preferred_mode":  string(u.Profile.PreferredMode),
			"language":        string(u.Profile.Language),
			"high_contrast":   u.Profile.HighContrast,
			"large_text":      u.Profile.LargeText,
		},
		"documents_submitted": docs,
	}
}

func profileItemFromDocument(doc ports.Document) ports.ProfileItem {
	item := ports.ProfileItem{
		ID:                 asString(doc["id"]),
		Name:               asString(doc["name"]),
		Email:              asString(doc["email"]),
		Phone:              asString(doc["phone"]),
		Country:            asString(doc["country"]),
		City:               asString(doc["city"]),
		DocumentsSubmitted: asStringSlice(doc["documents_submitted"]),
	}
	if profile, ok := doc["profile"].(map[string]any); ok {
		item.Profile = ports.DisabilityProfileInput{
			DisabilityType: asStringSlice(profile["disability_type"]),
			PreferredMode:  asString(profile["preferred_mode"]),
			Language:       asString(profile["language"]),
			HighContrast:   asBool(profile["high_contrast"]),
			LargeText:      asBool(profile["large_text"]),
		}
	}
	return item
}

func sosDocument(s domain.Sos) ports.Document {
	return ports.Document{
		"user_id":        s.UserID,
		"location":       s.Location,
		"notes":          s.Notes,
		"emergency_type": string(s.EmergencyType),
		"status":         string(s.Status),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	switch raw := v.(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, e := range raw {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
