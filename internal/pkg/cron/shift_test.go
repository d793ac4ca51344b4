package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) CountOpenShifts(context.Context) (int64, error) {
	return f.n, f.err
}

func TestPublishOpenShifts(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_open_shifts"})
	jobs := &ShiftJobs{shifts: fakeCounter{n: 7}, gauge: gauge}

	scheduler := NewScheduler(context.Background())
	jobs.RegisterJobs(scheduler, time.Minute)
	scheduler.RunOnce(context.Background())

	assert.Equal(t, float64(7), testutil.ToFloat64(gauge))
}

func TestPublishOpenShifts_KeepsLastValueOnError(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_open_shifts_err"})
	gauge.Set(3)
	jobs := &ShiftJobs{shifts: fakeCounter{err: errors.New("db down")}, gauge: gauge}

	err := jobs.PublishOpenShifts(context.Background())
	require.Error(t, err)
	assert.Equal(t, float64(3), testutil.ToFloat64(gauge))
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	var runs atomic.Int32
	scheduler := NewScheduler(context.Background())
	scheduler.AddJob("tick", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	scheduler.Start()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	scheduler.Stop()

	assert.EqualValues(t, 1, runs.Load())
}
