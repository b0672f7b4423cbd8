// Package booking builds booking and review records from the acting user,
// the selected listing and the current time. Bookings are value snapshots:
// later edits to the source listing never reach a booking built here.
package booking

import (
	"time"

	"homemate/models"
	"homemate/utils"
)

// BookingTimeLayout renders "11 November 2025, 8:52 PM".
const BookingTimeLayout = "02 January 2006, 3:04 PM"

// ReviewDateLayout renders "2025-11-11".
const ReviewDateLayout = "2006-01-02"

// BuildBooking snapshots the listing's display fields together with the
// acting user's email and a human-readable timestamp.
func BuildBooking(user models.UserProfile, listing models.ServiceListing, now time.Time) models.Booking {
	return models.Booking{
		UserEmail:     user.Email,
		ServiceID:     listing.ID,
		ServiceName:   listing.ServiceName,
		Category:      listing.Category,
		Description:   listing.Description,
		Image:         listing.Image,
		Price:         listing.Price,
		ProviderName:  listing.ProviderName,
		ProviderEmail: listing.ProviderEmail,
		Rating:        listing.Rating,
		BookingTime:   now.Format(BookingTimeLayout),
	}
}

// BuildReview constructs a review from a booking context. The rating must be
// in [1,5] and the comment length in [10,100], bounds inclusive; anything
// else is rejected without constructing the record.
func BuildReview(user models.UserProfile, booked models.Booking, rating int, comment string, now time.Time) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, utils.ValidationError{Field: "rating", Message: "Rating must be between 1 and 5"}
	}
	if n := len([]rune(comment)); n < 10 || n > 100 {
		return models.Review{}, utils.ValidationError{Field: "comment", Message: "Review must be 10-100 characters"}
	}
	return models.Review{
		Rating:       rating,
		Comment:      comment,
		Date:         now.Format(ReviewDateLayout),
		UserName:     user.DisplayName,
		UserEmail:    user.Email,
		ServiceUsed:  booked.ServiceName,
		ProviderName: booked.ProviderName,
		ServiceID:    booked.ServiceID,
	}, nil
}
