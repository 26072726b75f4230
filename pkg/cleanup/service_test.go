package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/config"
)

type recordingReaper struct {
	mu          sync.Mutex
	expiredTTLs []time.Duration
	itineraries []string
	expiredN    int
	itineraryN  int
}

func (r *recordingReaper) CleanupExpiredEvents(_ context.Context, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expiredTTLs = append(r.expiredTTLs, ttl)
	return r.expiredN, nil
}

func (r *recordingReaper) CleanupItineraryEvents(_ context.Context, itineraryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itineraries = append(r.itineraries, itineraryID)
	return r.itineraryN, nil
}

func (r *recordingReaper) snapshot() ([]time.Duration, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.expiredTTLs...), append([]string(nil), r.itineraries...)
}

func retention(ttl, grace, interval time.Duration) *config.RetentionConfig {
	return &config.RetentionConfig{
		EventTTL:        config.Duration(ttl),
		CompletedGrace:  config.Duration(grace),
		CleanupInterval: config.Duration(interval),
	}
}

func TestService_SweepsOnStartAndTick(t *testing.T) {
	reaper := &recordingReaper{expiredN: 3}
	svc := NewService(retention(time.Hour, time.Minute, 20*time.Millisecond), reaper)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		ttls, _ := reaper.snapshot()
		return len(ttls) >= 2
	}, time.Second, 5*time.Millisecond, "expected startup sweep plus at least one tick")

	ttls, _ := reaper.snapshot()
	assert.Equal(t, time.Hour, ttls[0])
}

func TestService_GraceCleanupFires(t *testing.T) {
	reaper := &recordingReaper{itineraryN: 7}
	svc := NewService(retention(time.Hour, 10*time.Millisecond, time.Hour), reaper)

	svc.Start(context.Background())
	defer svc.Stop()

	svc.ScheduleItineraryCleanup("it_done")

	require.Eventually(t, func() bool {
		_, its := reaper.snapshot()
		return len(its) == 1
	}, time.Second, 5*time.Millisecond)

	_, its := reaper.snapshot()
	assert.Equal(t, "it_done", its[0])
}

func TestService_ZeroGraceCleansImmediately(t *testing.T) {
	reaper := &recordingReaper{}
	svc := NewService(retention(time.Hour, 0, time.Hour), reaper)

	svc.ScheduleItineraryCleanup("it_now")

	_, its := reaper.snapshot()
	require.Equal(t, []string{"it_now"}, its)
}

func TestService_RearmResetsTimer(t *testing.T) {
	reaper := &recordingReaper{}
	svc := NewService(retention(time.Hour, 30*time.Millisecond, time.Hour), reaper)

	svc.ScheduleItineraryCleanup("it_regen")
	svc.ScheduleItineraryCleanup("it_regen")

	require.Eventually(t, func() bool {
		_, its := reaper.snapshot()
		return len(its) >= 1
	}, time.Second, 5*time.Millisecond)

	// A short settle window: the re-arm must not produce a second firing.
	time.Sleep(60 * time.Millisecond)
	_, its := reaper.snapshot()
	assert.Equal(t, []string{"it_regen"}, its)
}

func TestService_StopCancelsPendingTimers(t *testing.T) {
	reaper := &recordingReaper{}
	svc := NewService(retention(time.Hour, time.Hour, time.Hour), reaper)

	svc.Start(context.Background())
	svc.ScheduleItineraryCleanup("it_pending")
	svc.Stop()

	_, its := reaper.snapshot()
	assert.Empty(t, its)
}

func TestService_StopIsIdempotentBeforeStart(t *testing.T) {
	svc := NewService(retention(time.Hour, time.Minute, time.Hour), &recordingReaper{})
	svc.Stop() // must not panic or block
}
