package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgame/internal/game"
)

type onePicker string

func (p onePicker) Pick(int) (string, error) { return string(p), nil }

func newSession(t *testing.T) *Session {
	t.Helper()
	g := game.New(onePicker("CAT"))
	require.NoError(t, g.Start(3))
	return NewSession(g, false)
}

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "missing"))
}

func TestSession_With(t *testing.T) {
	s := newSession(t)
	var status game.Status
	s.With(func(g *game.State) {
		g.AppendLetter('c')
		status = g.Status()
	})
	assert.Equal(t, game.InProgress, status)
	s.With(func(g *game.State) { assert.Equal(t, "C", g.Guess()) })
}

func TestSession_ConcurrentAccessIsSerialized(t *testing.T) {
	s := newSession(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.With(func(g *game.State) {
				g.AppendLetter('x')
				g.RemoveLetter()
			})
		}()
	}
	wg.Wait()
	s.With(func(g *game.State) { assert.Equal(t, "", g.Guess()) })
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore().(*memory)
	now := time.Now()
	m.now = func() time.Time { return now }

	stale := newSession(t)
	stale.lastAccess = now.Add(-3 * time.Hour)
	fresh := newSession(t)
	fresh.lastAccess = now.Add(-time.Minute)
	require.NoError(t, m.Save(ctx, stale))
	require.NoError(t, m.Save(ctx, fresh))

	assert.Equal(t, 1, m.Sweep(ctx, 2*time.Hour))
	_, err := m.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestRunSweeper_StopsOnCancel(t *testing.T) {
	st := NewMemoryStore()
	s := newSession(t)
	s.lastAccess = time.Now().Add(-time.Hour)
	require.NoError(t, st.Save(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, st, 5*time.Millisecond, time.Minute, func(n int) { swept <- n })
		close(done)
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Equal(t, 0, st.Len())
}
