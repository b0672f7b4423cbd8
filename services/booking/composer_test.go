package booking_test

import (
	"strings"
	"testing"
	"time"

	"homemate/models"
	"homemate/services/booking"
	"homemate/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing() models.ServiceListing {
	return models.ServiceListing{
		ID:            "svc-1",
		ServiceName:   "Deep Cleaning",
		Category:      "Cleaning",
		Price:         49.99,
		Description:   "Full apartment deep clean",
		Image:         "https://img.example.com/clean.jpg",
		ProviderName:  "Jane's Cleaning",
		ProviderEmail: "jane@example.com",
		Rating:        4.5,
	}
}

func TestBuildBookingSnapshotsListing(t *testing.T) {
	user := models.UserProfile{UID: "u1", DisplayName: "Sam", Email: "sam@example.com"}
	listing := sampleListing()
	now := time.Date(2025, time.November, 11, 20, 52, 0, 0, time.UTC)

	booked := booking.BuildBooking(user, listing, now)

	assert.Equal(t, "sam@example.com", booked.UserEmail)
	assert.Equal(t, "svc-1", booked.ServiceID)
	assert.Equal(t, "Deep Cleaning", booked.ServiceName)
	assert.Equal(t, 49.99, booked.Price)
	assert.Equal(t, "11 November 2025, 8:52 PM", booked.BookingTime)
}

func TestBuildBookingIsValueSnapshot(t *testing.T) {
	user := models.UserProfile{Email: "sam@example.com"}
	listing := sampleListing()

	booked := booking.BuildBooking(user, listing, time.Now())

	// Later edits to the source listing never reach the booking.
	listing.Price = 999
	listing.ServiceName = "Renamed"

	assert.Equal(t, 49.99, booked.Price)
	assert.Equal(t, "Deep Cleaning", booked.ServiceName)
}

func TestBuildBookingMorningTimestamp(t *testing.T) {
	now := time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC)
	booked := booking.BuildBooking(models.UserProfile{}, sampleListing(), now)
	assert.Equal(t, "02 January 2026, 9:05 AM", booked.BookingTime)
}

func TestBuildReview(t *testing.T) {
	user := models.UserProfile{DisplayName: "Sam", Email: "sam@example.com"}
	booked := models.Booking{
		ServiceID:    "svc-1",
		ServiceName:  "Deep Cleaning",
		ProviderName: "Jane's Cleaning",
	}
	now := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)

	review, err := booking.BuildReview(user, booked, 5, "Spotless work, on time.", now)
	require.NoError(t, err)

	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "2025-11-11", review.Date)
	assert.Equal(t, "Sam", review.UserName)
	assert.Equal(t, "Deep Cleaning", review.ServiceUsed)
	assert.Equal(t, "svc-1", review.ServiceID)
}

func TestBuildReviewRejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		_, err := booking.BuildReview(models.UserProfile{}, models.Booking{}, rating, "Long enough comment", time.Now())
		require.Error(t, err, "rating %d", rating)
		var verr utils.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
	}

	// Bounds themselves are accepted.
	for _, rating := range []int{1, 5} {
		_, err := booking.BuildReview(models.UserProfile{}, models.Booking{}, rating, "Long enough comment", time.Now())
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestBuildReviewCommentBounds(t *testing.T) {
	cases := []struct {
		comment string
		wantErr bool
	}{
		{strings.Repeat("a", 9), true},
		{strings.Repeat("a", 10), false},
		{strings.Repeat("a", 100), false},
		{strings.Repeat("a", 101), true},
	}
	for _, tc := range cases {
		_, err := booking.BuildReview(models.UserProfile{}, models.Booking{}, 3, tc.comment, time.Now())
		if tc.wantErr {
			require.Error(t, err, "len %d", len(tc.comment))
			var verr utils.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, "Review must be 10-100 characters", verr.Message)
		} else {
			assert.NoError(t, err, "len %d", len(tc.comment))
		}
	}
}
