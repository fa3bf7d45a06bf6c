package admin

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPinger отдает заранее заданные состояния, затем повторяет последнее
type scriptedPinger struct {
	states []bool
	calls  atomic.Int32
}

func (p *scriptedPinger) Ping(context.Context) bool {
	n := int(p.calls.Add(1)) - 1
	if n >= len(p.states) {
		return p.states[len(p.states)-1]
	}
	return p.states[n]
}

func TestHealthMonitor_ReportsChangesOnly(t *testing.T) {
	pinger := &scriptedPinger{states: []bool{true, true, false, false, true}}

	var (
		mu      sync.Mutex
		changes []bool
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewHealthMonitor(pinger, 5*time.Millisecond, func(online bool) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, online)
	}, discardLogger())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	require.Eventually(t, func() bool { return pinger.calls.Load() >= 8 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false, true}, changes)
}

func TestNewHealthMonitor_Defaults(t *testing.T) {
	m := NewHealthMonitor(&scriptedPinger{states: []bool{true}}, 0, nil, nil)
	assert.Equal(t, DefaultHealthInterval, m.interval)
	assert.NotNil(t, m.logger)
}
