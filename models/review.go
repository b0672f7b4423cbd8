package models

// Review is a user's feedback on a booked service. Created once from a
// booking context and never mutated.
type Review struct {
	ID           string `json:"_id,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	UserName     string `json:"userName"`
	UserEmail    string `json:"userEmail"`
	ServiceUsed  string `json:"serviceUsed"`
	ProviderName string `json:"providerName"`
	ServiceID    string `json:"serviceId"`
}
