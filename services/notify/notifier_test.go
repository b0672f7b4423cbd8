package notify_test

import (
	"testing"

	"homemate/services/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushDeliversAtMostOnce(t *testing.T) {
	n := notify.NewDefaultNotifier()
	n.Success("Service added successfully!")
	n.Error("Failed to delete service")

	notes := n.Flush()
	require.Len(t, notes, 2)
	assert.Equal(t, "success", notes[0].Level)
	assert.Equal(t, "Service added successfully!", notes[0].Message)
	assert.Equal(t, "error", notes[1].Level)
	assert.NotEmpty(t, notes[0].ID)

	assert.Empty(t, n.Flush(), "second flush returns nothing")
}

func TestFlushOnEmptyNotifier(t *testing.T) {
	n := notify.NewDefaultNotifier()
	assert.Empty(t, n.Flush())
}
