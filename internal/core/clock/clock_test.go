package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual(t *testing.T) {
	m := NewManual()
	require.NoError(t, m.Advance(0.5))
	require.NoError(t, m.Advance(0.25))
	assert.Equal(t, 0.75, m.Elapsed())
	assert.Equal(t, 0.25, m.Delta())

	assert.ErrorIs(t, m.Advance(-0.1), ErrNegativeDelta)
	assert.Equal(t, 0.75, m.Elapsed())

	m.Set(2.51, 0.016)
	assert.Equal(t, 2.51, m.Elapsed())
	assert.Equal(t, 0.016, m.Delta())
}

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrame(t *testing.T) {
	now := &fakeNow{t: time.Unix(1_700_000_000, 0)}
	f := newFrame(now.now, 100*time.Millisecond)

	now.advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, f.Tick())
	assert.InDelta(t, 0.016, f.Delta(), 1e-12)

	now.advance(time.Second)
	assert.Equal(t, 100*time.Millisecond, f.Tick(), "delta is capped")

	f.Pause()
	assert.True(t, f.IsPaused())
	now.advance(time.Second)
	assert.Zero(t, f.Tick())

	now.advance(5 * time.Second)
	f.Resume()
	now.advance(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, f.Tick())

	assert.InDelta(t, 0.126, f.Elapsed(), 1e-12)
}

func TestFrameUncapped(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	f := newFrame(now.now, 0)
	now.advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, f.Tick())
	assert.Equal(t, 3.0, f.Elapsed())
}
