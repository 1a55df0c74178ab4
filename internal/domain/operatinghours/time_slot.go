package operatinghours

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var hhmm = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TimeSlot is one open interval inside a single day. Zero-padded "HH:MM"
// strings compare lexicographically in chronological order.
type TimeSlot struct {
	open  string
	close string
}

func NewTimeSlot(open, close string) (TimeSlot, error) {
	if !IsValidTime(open) {
		return TimeSlot{}, fmt.Errorf("%w: open %q", ErrInvalidFormat, open)
	}
	if !IsValidTime(close) {
		return TimeSlot{}, fmt.Errorf("%w: close %q", ErrInvalidFormat, close)
	}
	if open >= close {
		return TimeSlot{}, fmt.Errorf("%w: %s-%s", ErrInvalidOrder, open, close)
	}
	return TimeSlot{open: open, close: close}, nil
}

// MustTimeSlot panics on invalid input. Meant for fixtures and tests.
func MustTimeSlot(open, close string) TimeSlot {
	s, err := NewTimeSlot(open, close)
	if err != nil {
		panic(err)
	}
	return s
}

func IsValidTime(v string) bool {
	return hhmm.MatchString(v)
}

func (s TimeSlot) Open() string  { return s.open }
func (s TimeSlot) Close() string { return s.close }

// Contains reports whether open <= t <= close. Both ends are inclusive.
func (s TimeSlot) Contains(t string) bool {
	return s.open <= t && t <= s.close
}

func (s TimeSlot) DurationMinutes() int {
	return minutes(s.close) - minutes(s.open)
}

func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.open == other.open && s.close == other.close
}

func (s TimeSlot) String() string {
	return s.open + "-" + s.close
}

type timeSlotJSON struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (s TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeSlotJSON{Open: s.open, Close: s.close})
}

func (s *TimeSlot) UnmarshalJSON(data []byte) error {
	var raw timeSlotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	slot, err := NewTimeSlot(raw.Open, raw.Close)
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

// minutes assumes v already matched hhmm.
func minutes(v string) int {
	h, _ := strconv.Atoi(v[:2])
	m, _ := strconv.Atoi(v[3:])
	return h*60 + m
}

// check re-runs NewTimeSlot's rules, catching the zero TimeSlot{}.
func (s TimeSlot) check() error {
	_, err := NewTimeSlot(s.open, s.close)
	return err
}
