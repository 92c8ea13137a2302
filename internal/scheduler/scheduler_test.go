package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	n     int
	err   error
}

func (c *countingSweeper) RunDueDateSweep(context.Context) (int, error) {
	c.calls.Add(1)
	return c.n, c.err
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	_, err := New("not a schedule", time.UTC, &countingSweeper{}, nil)
	assert.Error(t, err)
}

func TestRunNow(t *testing.T) {
	sweeper := &countingSweeper{n: 3}
	s, err := New("@daily", nil, sweeper, nil)
	require.NoError(t, err)

	n, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestRunNow_PropagatesPartialFailure(t *testing.T) {
	sweeper := &countingSweeper{n: 1, err: errors.New("listing receivables failed")}
	s, err := New("@daily", time.UTC, sweeper, nil)
	require.NoError(t, err)

	n, err := s.RunNow(context.Background())
	assert.Equal(t, 1, n)
	assert.Error(t, err)
}

func TestScheduledTicks(t *testing.T) {
	sweeper := &countingSweeper{}
	s, err := New("@every 1s", time.UTC, sweeper, nil)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
