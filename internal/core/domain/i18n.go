package domain

import "strings"

// NormalizeLang maps an arbitrary language tag to a supported Language.
// Any tag with a case-insensitive "ar" prefix (ar, AR-sa, arb) resolves to
// Arabic; everything else falls back to English.
func NormalizeLang(lang string) Language {
	if strings.HasPrefix(strings.ToLower(lang), "ar") {
		return LangArabic
	}
	return LangEnglish
}

// Translations holds the complete UI string tables for both supported
// languages. Both tables carry the same key set, so lookups never need
// per-key fallback. Initialized once, never mutated.
var Translations = map[Language]map[string]string{
	LangEnglish: {
		"title":           "NUJJUM — Accessibility & Empowerment",
		"subtitle":        "Adaptive hub for health, benefits, community and emergency support",
		"get_started":     "Get Started",
		"save":            "Save",
		"sos":             "Emergency SOS",
		"healthcare":      "Healthcare",
		"benefits":        "Government Benefits",
		"community":       "Community",
		"devices":         "Assistive Devices",
		"education":       "Education & Employment",
		"global":          "Global Requests",
		"voice_mode":      "Voice Mode",
		"text_mode":       "Text Mode",
		"simplified_mode": "Simplified Mode",
		"high_contrast":   "High Contrast",
		"large_text":      "Large Text",
		"language":        "Language",
		"profile_saved":   "Profile saved successfully",
	},
	LangArabic: {
		"title":           "نُجُّوم — منصة الوصول والتمكين",
		"subtitle":        "واجهة تكيفية للصحة والمزايا والمجتمع والدعم الطارئ",
		"get_started":     "ابدأ",
		"save":            "حفظ",
		"sos":             "نداء طارئ",
		"healthcare":      "الرعاية الصحية",
		"benefits":        "المزايا الحكومية",
		"community":       "المجتمع",
		"devices":         "الأجهزة المساعدة",
		"education":       "التعليم والعمل",
		"global":          "الطلبات العالمية",
		"voice_mode":      "وضع الصوت",
		"text_mode":       "وضع النص",
		"simplified_mode": "وضع مبسط",
		"high_contrast":   "تباين عالٍ",
		"large_text":      "نص كبير",
		"language":        "اللغة",
		"profile_saved":   "تم حفظ الملف الشخصي بنجاح",
	},
}
