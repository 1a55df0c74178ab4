package timezone

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTimezone applies until SetDefault is called with DEFAULT_TIMEZONE.
const DefaultTimezone = "America/Sao_Paulo"

var fallback atomic.Value

// Every point carries its own IANA name, so loaded locations are kept for
// the life of the process.
var locations sync.Map

func load(tz string) (*time.Location, bool) {
	if tz == "" {
		return nil, false
	}
	if loc, ok := locations.Load(tz); ok {
		return loc.(*time.Location), true
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, false
	}
	locations.Store(tz, loc)
	return loc, true
}

// SetDefault replaces the zone used for points without a usable timezone.
func SetDefault(tz string) error {
	if _, ok := load(tz); !ok {
		return fmt.Errorf("unknown timezone %q", tz)
	}
	fallback.Store(tz)
	return nil
}

func Default() string {
	if tz, ok := fallback.Load().(string); ok {
		return tz
	}
	return DefaultTimezone
}

func IsValid(tz string) bool {
	_, ok := load(tz)
	return ok
}

// Location falls back to Default(), then UTC, when tz cannot be loaded.
func Location(tz string) *time.Location {
	if loc, ok := load(tz); ok {
		return loc
	}
	if loc, ok := load(Default()); ok {
		return loc
	}
	return time.UTC
}

// In converts t to the wall clock of tz.
func In(t time.Time, tz string) time.Time {
	return t.In(Location(tz))
}
