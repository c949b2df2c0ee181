package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tr := NewTracker()

	require.NotNil(t, tr)
	require.Equal(t, 0, tr.Collisions())
	require.Equal(t, 0, tr.Buckets())
}

func TestTracker_Observe_NoCollision(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0xAAAA, 0)
	tr.Observe(0xBBBB, 0)

	require.Equal(t, 0, tr.Collisions())
	require.Equal(t, 2, tr.Buckets())
}

func TestTracker_Observe_Collision(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0xAAAA, 0) // first occupant of the bucket
	tr.Observe(0xAAAA, 1) // second, distinct Pack string, same bucket

	require.Equal(t, 1, tr.Collisions())
	require.Equal(t, 1, tr.Buckets())
}

func TestTracker_Observe_MultipleCollisions(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0x0001, 0)
	tr.Observe(0x0001, 1)
	tr.Observe(0x0002, 0)
	tr.Observe(0x0002, 1)
	tr.Observe(0x0002, 2)

	require.Equal(t, 3, tr.Collisions())
	require.Equal(t, 2, tr.Buckets())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0xAAAA, 0)
	tr.Observe(0xAAAA, 1)
	require.Equal(t, 1, tr.Collisions())

	tr.Reset()

	require.Equal(t, 0, tr.Collisions())
	require.Equal(t, 0, tr.Buckets())

	tr.Observe(0xBBBB, 0)
	require.Equal(t, 0, tr.Collisions())
	require.Equal(t, 1, tr.Buckets())
}
