package remote

import (
	"sync"

	"homemate/models"
)

// ServiceListState is the in-memory copy of the visible service list.
// Full replacements (list, search, filter) carry a sequence token taken when
// the request starts; a completion older than the last applied one is
// discarded, so two rapid requests leave the list consistent with the
// later-issued call instead of an interleaving of both.
type ServiceListState struct {
	mu      sync.RWMutex
	items   []models.ServiceListing
	nextSeq uint64
	applied uint64
}

func NewServiceListState() *ServiceListState {
	return &ServiceListState{}
}

// BeginReplace reserves a sequence token for a full-replace request.
func (s *ServiceListState) BeginReplace() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Replace installs a full result set if no newer replacement has landed.
// It reports whether the result was applied.
func (s *ServiceListState) Replace(token uint64, items []models.ServiceListing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.applied {
		return false
	}
	s.applied = token
	s.items = append([]models.ServiceListing(nil), items...)
	return true
}

// Append adds a newly created listing.
func (s *ServiceListState) Append(item models.ServiceListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// ReplaceByID swaps the listing with the matching id, if present.
func (s *ServiceListState) ReplaceByID(item models.ServiceListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}

// RemoveByID drops the listing with the matching id.
func (s *ServiceListState) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current list.
func (s *ServiceListState) Items() []models.ServiceListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceListing(nil), s.items...)
}

// BookingListState is the in-memory copy of the signed-in user's bookings.
type BookingListState struct {
	mu      sync.RWMutex
	items   []models.Booking
	nextSeq uint64
	applied uint64
}

func NewBookingListState() *BookingListState {
	return &BookingListState{}
}

func (s *BookingListState) BeginReplace() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

func (s *BookingListState) Replace(token uint64, items []models.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.applied {
		return false
	}
	s.applied = token
	s.items = append([]models.Booking(nil), items...)
	return true
}

func (s *BookingListState) Append(item models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *BookingListState) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *BookingListState) Items() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.items...)
}
