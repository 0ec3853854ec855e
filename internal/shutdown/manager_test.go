package shutdown

import (
	"syscall"
	"testing"
	"time"

	"booksy-collection/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	var order []string
	m.Register("first", func() { order = append(order, "first") })
	m.Register("second", func() { order = append(order, "second") })

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.timeout = 10 * time.Millisecond
	block := make(chan struct{})
	defer close(block)

	var ran bool
	m.Register("quick", func() { ran = true })
	m.Register("stuck", func() { <-block })

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran)
}

func TestListenSignal(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	stopped := make(chan struct{})
	m.Register("app", func() { close(stopped) })

	stop := m.Listen()
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("signal did not trigger shutdown")
	}
}
