package domain

// CatalogItem is a single service offered within a category.
type CatalogItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogCategory groups related services under a stable key.
type CatalogCategory struct {
	Key   string        `json:"key"`
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

// ServicesCatalog is the full static services structure served verbatim.
type ServicesCatalog struct {
	Categories []CatalogCategory `json:"categories"`
}

// Catalog is the process-wide services seed. Initialized once, never
// mutated — safe for concurrent reads.
var Catalog = ServicesCatalog{
	Categories: []CatalogCategory{
		{Key: "healthcare", Name: "Healthcare", Items: []CatalogItem{
			{Name: "Telemedicine", Description: "Virtual consults with accessibility options"},
			{Name: "Rehabilitation", Description: "Physio, speech, occupational therapy"},
		}},
		{Key: "benefits", Name: "Government Benefits", Items: []CatalogItem{
			{Name: "POD ID Verification", Description: "Submit documents to unlock programs"},
			{Name: "Subsidies", Description: "Travel, devices, healthcare subsidies"},
		}},
		{Key: "community", Name: "Community", Items: []CatalogItem{
			{Name: "Local Groups", Description: "Meetups and support circles"},
			{Name: "Volunteers", Description: "Request helpers and guides"},
		}},
		{Key: "devices", Name: "Assistive Devices", Items: []CatalogItem{
			{Name: "Marketplace", Description: "Screen readers, hearing aids, mobility aids"},
		}},
		{Key: "education", Name: "Education & Employment", Items: []CatalogItem{
			{Name: "Accessible Courses", Description: "Learning paths with captions and TTS"},
			{Name: "Inclusive Jobs", Description: "Listings with accommodations"},
		}},
		{Key: "global", Name: "Global Requests", Items: []CatalogItem{
			{Name: "Cross-border Support", Description: "Travel and relocation assistance"},
		}},
	},
}
