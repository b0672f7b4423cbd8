package remote_test

import (
	"testing"

	"homemate/models"
	"homemate/services/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(id, name string) models.ServiceListing {
	return models.ServiceListing{ID: id, ServiceName: name}
}

func TestServiceListStateReplaceDiscardsStaleCompletion(t *testing.T) {
	state := remote.NewServiceListState()

	first := state.BeginReplace()
	second := state.BeginReplace()

	// The later-issued request completes first.
	assert.True(t, state.Replace(second, []models.ServiceListing{listing("2", "Filter result")}))

	// The earlier request lands afterwards and must be discarded.
	assert.False(t, state.Replace(first, []models.ServiceListing{listing("1", "Stale result")}))

	items := state.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Filter result", items[0].ServiceName)
}

func TestServiceListStateReplaceInOrder(t *testing.T) {
	state := remote.NewServiceListState()

	first := state.BeginReplace()
	assert.True(t, state.Replace(first, []models.ServiceListing{listing("1", "a")}))

	second := state.BeginReplace()
	assert.True(t, state.Replace(second, []models.ServiceListing{listing("2", "b"), listing("3", "c")}))

	assert.Len(t, state.Items(), 2)
}

func TestServiceListStateMutations(t *testing.T) {
	state := remote.NewServiceListState()
	token := state.BeginReplace()
	state.Replace(token, []models.ServiceListing{listing("1", "a"), listing("2", "b")})

	state.Append(listing("3", "c"))
	assert.Len(t, state.Items(), 3)

	state.ReplaceByID(listing("2", "b-updated"))
	items := state.Items()
	assert.Equal(t, "b-updated", items[1].ServiceName)

	state.RemoveByID("1")
	items = state.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
}

func TestServiceListStateItemsIsACopy(t *testing.T) {
	state := remote.NewServiceListState()
	state.Append(listing("1", "a"))

	items := state.Items()
	items[0].ServiceName = "mutated"

	assert.Equal(t, "a", state.Items()[0].ServiceName)
}

func TestBookingListStateStaleCompletionDiscarded(t *testing.T) {
	state := remote.NewBookingListState()

	first := state.BeginReplace()
	second := state.BeginReplace()

	assert.True(t, state.Replace(second, []models.Booking{{ID: "b2"}}))
	assert.False(t, state.Replace(first, []models.Booking{{ID: "b1"}}))

	items := state.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b2", items[0].ID)
}

func TestBookingListStateRemoveByID(t *testing.T) {
	state := remote.NewBookingListState()
	state.Append(models.Booking{ID: "b1"})
	state.Append(models.Booking{ID: "b2"})

	state.RemoveByID("b1")
	items := state.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b2", items[0].ID)
}
