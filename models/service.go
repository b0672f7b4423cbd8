package models

// ServiceListing represents a provider's advertised service. The record is
// owned by the external data backend; this layer holds ephemeral copies for
// rendering. Ownership is matched by the provider's email.
type ServiceListing struct {
	ID            string  `json:"_id,omitempty"`
	ServiceName   string  `json:"serviceName"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	ProviderName  string  `json:"providerName"`
	ProviderEmail string  `json:"email"`
	Rating        float64 `json:"rating"`
}

// ServiceCategories is the fixed set of categories a listing may use.
var ServiceCategories = []string{
	"Cleaning",
	"Electrical",
	"Plumbing",
	"Carpentry",
	"Painting",
	"Gardening",
	"Moving",
	"Repair",
	"Maintenance",
	"Other",
}

// IsServiceCategory reports whether s is one of the fixed categories.
func IsServiceCategory(s string) bool {
	for _, c := range ServiceCategories {
		if c == s {
			return true
		}
	}
	return false
}

// ServiceListingPatch carries a partial update for a listing. Nil fields are
// left untouched by the backend.
type ServiceListingPatch struct {
	ServiceName *string  `json:"serviceName,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
}
