package models

// Booking is a user's confirmed request for a specific listing. It is an
// immutable snapshot taken at confirmation time: later edits to the source
// listing must not change a past booking.
type Booking struct {
	ID            string  `json:"_id,omitempty"`
	UserEmail     string  `json:"email"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	ProviderName  string  `json:"providerName"`
	ProviderEmail string  `json:"providerEmail"`
	Rating        float64 `json:"rating"`
	BookingTime   string  `json:"bookingTime"`
}
