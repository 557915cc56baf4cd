package flow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	handles := newFakeHandles()
	m := NewManager(func() *Controller {
		return NewController(fixed("shirt"), handles, (&recorder{}).apply)
	})

	s := m.Create()
	require.NotEmpty(t, s.ID)
	got, ok := m.Get(s.ID)
	require.True(t, ok)
	require.Same(t, s, got)

	_, err := s.Controller.Upload(context.Background(), img("A"))
	require.NoError(t, err)
	require.Equal(t, 1, handles.liveCount())

	require.True(t, m.Delete(s.ID))
	require.False(t, m.Delete(s.ID))
	_, ok = m.Get(s.ID)
	require.False(t, ok)
	require.Equal(t, 0, handles.liveCount())
}

func TestManagerSweep(t *testing.T) {
	handles := newFakeHandles()
	m := NewManager(func() *Controller {
		return NewController(fixed("shirt"), handles, (&recorder{}).apply)
	})
	stale := m.Create()
	_, _ = stale.Controller.Upload(context.Background(), img("A"))
	stale.mu.Lock()
	stale.lastActivity = time.Now().Add(-time.Hour)
	stale.mu.Unlock()
	fresh := m.Create()

	require.Equal(t, 1, m.Sweep(time.Minute))
	require.Equal(t, 1, m.Len())
	_, ok := m.Get(fresh.ID)
	require.True(t, ok)
	require.Equal(t, 0, handles.liveCount())
}

func TestManagerRunSweeperClosesOnShutdown(t *testing.T) {
	handles := newFakeHandles()
	m := NewManager(func() *Controller {
		return NewController(fixed("shirt"), handles, (&recorder{}).apply)
	})
	s := m.Create()
	_, _ = s.Controller.Upload(context.Background(), img("A"))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	m.RunSweeper(ctx, wg, time.Hour, time.Hour)
	cancel()
	wg.Wait()

	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, handles.liveCount())
}
