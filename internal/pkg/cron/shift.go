package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var openShiftsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "staff_open_shifts",
	Help: "Shifts that have started and are not yet closed",
})

// OpenShiftCounter is the slice of the shift service the gauge job reads.
type OpenShiftCounter interface {
	CountOpenShifts(ctx context.Context) (int64, error)
}

type ShiftJobs struct {
	shifts OpenShiftCounter
	gauge  prometheus.Gauge
}

func NewShiftJobs(shifts OpenShiftCounter) *ShiftJobs {
	return &ShiftJobs{shifts: shifts, gauge: openShiftsGauge}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("publish_open_shifts", interval, j.PublishOpenShifts)
}

// PublishOpenShifts refreshes the open-shift gauge.
func (j *ShiftJobs) PublishOpenShifts(ctx context.Context) error {
	n, err := j.shifts.CountOpenShifts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count open shifts: %w", err)
	}
	j.gauge.Set(float64(n))
	return nil
}
