package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
)

// GrowthJob promotes finished crops and expires the level-up notice
type GrowthJob struct {
	farm  farm.Service
	clock clock.Clock
}

// NewGrowthJob creates the growth tick job
func NewGrowthJob(f farm.Service, clk clock.Clock) *GrowthJob {
	return &GrowthJob{farm: f, clock: clk}
}

// Process runs one tick
func (j *GrowthJob) Process(ctx context.Context) error {
	start := time.Now()
	defer func() { metrics.TickDuration.Observe(time.Since(start).Seconds()) }()

	res, err := j.farm.Tick(ctx, j.clock.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgTickFailed, err)
	}
	if len(res.Tiles) > 0 {
		logger.FromContext(ctx).Debug(LogMsgTilesReady, "tiles", res.Tiles, "revision", res.Revision)
	}
	return nil
}

// AmbienceJob rolls the weather and publishes visible changes
type AmbienceJob struct {
	sky   *ambience.Sky
	clock clock.Clock
	bus   event.Bus
}

// NewAmbienceJob creates the ambience tick job
func NewAmbienceJob(sky *ambience.Sky, clk clock.Clock, bus event.Bus) *AmbienceJob {
	return &AmbienceJob{sky: sky, clock: clk, bus: bus}
}

// Process runs one ambience tick
func (j *AmbienceJob) Process(ctx context.Context) error {
	st, changed := j.sky.Tick(j.clock.Now())
	if !changed {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgAmbienceChanged, "time_of_day", st.TimeOfDay, "weather", st.Weather)

	if j.bus == nil {
		return nil
	}
	evt := event.NewAmbienceChangedEvent(domain.AmbiencePayload{
		TimeOfDay: string(st.TimeOfDay),
		Weather:   string(st.Weather),
		Greeting:  st.Greeting,
	})
	if err := j.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgAmbiencePublish, "error", err)
	}
	return nil
}

// Pusher sends the current view to connected clients
type Pusher interface {
	Push(ctx context.Context)
}

// PushJob refreshes client countdowns once per tick
type PushJob struct {
	pusher Pusher
}

// NewPushJob creates the view push job
func NewPushJob(p Pusher) *PushJob {
	return &PushJob{pusher: p}
}

// Process pushes one view
func (j *PushJob) Process(ctx context.Context) error {
	j.pusher.Push(ctx)
	return nil
}
