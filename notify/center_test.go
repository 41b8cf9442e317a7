package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter() (*Center, *time.Time) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	c := NewCenter(3 * time.Second)
	c.Now = func() time.Time { return now }
	return c, &now
}

func TestCurrentUntilExpiry(t *testing.T) {
	c, now := newTestCenter()

	c.Success("u1", "2x Espresso added to cart.")

	n, ok := c.Current("u1")
	require.True(t, ok)
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, "2x Espresso added to cart.", n.Message)

	*now = now.Add(2999 * time.Millisecond)
	_, ok = c.Current("u1")
	assert.True(t, ok)

	*now = now.Add(time.Millisecond)
	_, ok = c.Current("u1")
	assert.False(t, ok)
}

func TestNewMessageReplacesOld(t *testing.T) {
	c, _ := newTestCenter()

	c.Success("u1", "first")
	c.Error("u1", "second")

	n, ok := c.Current("u1")
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)
	assert.Equal(t, LevelError, n.Level)
}

func TestNotificationsArePerUser(t *testing.T) {
	c, _ := newTestCenter()

	c.Info("u2", "Order #000001 marked as completed.")

	_, ok := c.Current("u1")
	assert.False(t, ok)
	_, ok = c.Current("u2")
	assert.True(t, ok)

	c.Dismiss("u2")
	_, ok = c.Current("u2")
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	c, now := newTestCenter()

	c.Info("u1", "old")
	*now = now.Add(2 * time.Second)
	c.Info("u2", "new")
	*now = now.Add(1500 * time.Millisecond)

	assert.Equal(t, 1, c.Sweep())
	_, ok := c.Current("u2")
	assert.True(t, ok)
}

func TestStartSweepsInBackground(t *testing.T) {
	c := NewCenter(10 * time.Millisecond)
	c.Info("u1", "short lived")

	c.Start(5 * time.Millisecond)
	defer c.Stop()

	assert.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.items) == 0
	}, time.Second, 5*time.Millisecond)

	c.Stop()
}
