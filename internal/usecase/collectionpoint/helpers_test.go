package collectionpoint

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint/mocks"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/cache"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	repo   *mocks.MockRepository
	cache  *cache.MemoryCache
	loader *Loader
	sink   *recordingSink
	audit  *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mocks.NewMockRepository(ctrl),
		cache: cache.NewMemoryCache(),
		sink:  &recordingSink{},
	}
	f.loader = NewLoader(f.repo, f.cache, time.Minute, zap.NewNop())
	f.audit = audit.NewDispatcher(f.sink, zap.NewNop())
	t.Cleanup(f.audit.Close)
	return f
}

// flushAudit waits for queued events and returns the recorded actions.
func (f *fixture) flushAudit() []string {
	f.audit.Close()
	return f.sink.actions()
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func weekdayHours(open, close string) *operatinghours.WeeklySchedule {
	days := map[operatinghours.Weekday][]operatinghours.TimeSlot{}
	for d := operatinghours.Monday; d <= operatinghours.Friday; d++ {
		days[d] = []operatinghours.TimeSlot{operatinghours.MustTimeSlot(open, close)}
	}
	s := operatinghours.NewWeeklySchedule(days)
	return &s
}

func withSlot(t *testing.T, s operatinghours.WeeklySchedule, day operatinghours.Weekday, open, close string) operatinghours.WeeklySchedule {
	t.Helper()
	out, err := s.AddTimeSlot(day, operatinghours.MustTimeSlot(open, close))
	if err != nil {
		t.Fatalf("add slot: %v", err)
	}
	return out
}

func float(v float64) *float64 { return &v }
func id(v uint) *uint         { return &v }
