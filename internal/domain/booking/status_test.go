package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect-sg/community-api/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}

func TestMarkCancelled(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, MarkCancelled(b))
	assert.Equal(t, string(StatusCancelled), b.Status)
}

func TestMarkCompleted(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, MarkCompleted(b))
	assert.Equal(t, string(StatusCompleted), b.Status)
}

// Terminal states never move again, in either direction.
func TestTerminalStatesRejectTransitions(t *testing.T) {
	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(from)}

		err := MarkCancelled(b)
		assertCode(t, err, CodeEditLocked)
		assert.Equal(t, string(from), b.Status)

		err = MarkCompleted(b)
		assertCode(t, err, CodeEditLocked)
		assert.Equal(t, string(from), b.Status)
	}
}
