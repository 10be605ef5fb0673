package notify

import (
	"testing"
	"time"

	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_ShowsAndAutoHides(t *testing.T) {
	n := New(20 * time.Millisecond)

	n.Success("Thank you for your purchase!")

	got := n.Current()
	assert.True(t, got.Visible)
	assert.Equal(t, "Thank you for your purchase!", got.Message)
	assert.Equal(t, models.SeveritySuccess, got.Severity)

	require.Eventually(t, func() bool {
		return !n.Current().Visible
	}, time.Second, 5*time.Millisecond)

	// The message itself is retained, only visibility flips.
	assert.Equal(t, "Thank you for your purchase!", n.Current().Message)
}

func TestNotify_NewMessageReplacesSlot(t *testing.T) {
	n := New(50 * time.Millisecond)

	n.Success("first")
	n.Error("second")

	got := n.Current()
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, models.SeverityError, got.Severity)
	assert.True(t, got.Visible)
}

func TestNotify_StaleTimerCannotHideNewerMessage(t *testing.T) {
	n := New(30 * time.Millisecond)

	n.Success("first")
	time.Sleep(20 * time.Millisecond)
	n.Success("second") // the first timer fires while second is visible

	time.Sleep(20 * time.Millisecond) // past first's window, inside second's
	got := n.Current()
	assert.True(t, got.Visible, "first message's timer must not hide the second")
	assert.Equal(t, "second", got.Message)

	require.Eventually(t, func() bool {
		return !n.Current().Visible
	}, time.Second, 5*time.Millisecond)
}

func TestNew_NonPositiveDurationUsesDefault(t *testing.T) {
	n := New(0)
	assert.Equal(t, DefaultDuration, n.duration)
}
