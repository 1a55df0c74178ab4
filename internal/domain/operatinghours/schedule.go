package operatinghours

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// WeeklySchedule holds the slots of each day, sorted by opening time.
// It is a value type: every mutation returns a new schedule.
type WeeklySchedule struct {
	days [7][]TimeSlot
}

// NewWeeklySchedule builds a schedule from a partial mapping. Missing days
// are closed all day.
func NewWeeklySchedule(days map[Weekday][]TimeSlot) WeeklySchedule {
	var w WeeklySchedule
	for d, slots := range days {
		if !d.Valid() || len(slots) == 0 {
			continue
		}
		w.days[d] = sortedCopy(slots)
	}
	return w
}

// AddTimeSlot fails on an unknown day or a slot not built by NewTimeSlot.
// Overlaps are left to Validate.
func (w WeeklySchedule) AddTimeSlot(day Weekday, slot TimeSlot) (WeeklySchedule, error) {
	if !day.Valid() {
		return w, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(day))
	}
	if err := slot.check(); err != nil {
		return w, err
	}

	out := w.clone()
	out.days[day] = sortedCopy(append(out.days[day], slot))
	return out, nil
}

func (w WeeklySchedule) RemoveTimeSlot(day Weekday, index int) (WeeklySchedule, error) {
	if !day.Valid() {
		return w, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(day))
	}
	slots := w.days[day]
	if index < 0 || index >= len(slots) {
		return w, fmt.Errorf("%w: %s[%d], %d slots", ErrIndexOutOfRange, day, index, len(slots))
	}

	out := w.clone()
	next := make([]TimeSlot, 0, len(slots)-1)
	next = append(next, slots[:index]...)
	next = append(next, slots[index+1:]...)
	if len(next) == 0 {
		next = nil
	}
	out.days[day] = next
	return out, nil
}

func (w WeeklySchedule) TimeSlotsForDay(day Weekday) []TimeSlot {
	if !day.Valid() {
		return []TimeSlot{}
	}
	out := make([]TimeSlot, len(w.days[day]))
	copy(out, w.days[day])
	return out
}

// IsOpenAt uses TimeSlot.Contains, so the closing minute counts as open.
func (w WeeklySchedule) IsOpenAt(day Weekday, t string) bool {
	if !day.Valid() {
		return false
	}
	for _, s := range w.days[day] {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Validate rejects days whose consecutive slots overlap. Touching slots
// (close == next open) are allowed.
func (w WeeklySchedule) Validate() error {
	for _, d := range Weekdays {
		slots := w.days[d]
		for _, slot := range slots {
			if err := slot.check(); err != nil {
				return err
			}
		}
		for i := 1; i < len(slots); i++ {
			if slots[i-1].close > slots[i].open {
				return fmt.Errorf("%w: %s %s and %s", ErrOverlappingSlots, d, slots[i-1], slots[i])
			}
		}
	}
	return nil
}

// IsEmpty reports whether the schedule is closed all week.
func (w WeeklySchedule) IsEmpty() bool {
	for _, slots := range w.days {
		if len(slots) > 0 {
			return false
		}
	}
	return true
}

func (w WeeklySchedule) Equal(other WeeklySchedule) bool {
	for d := range w.days {
		if len(w.days[d]) != len(other.days[d]) {
			return false
		}
		for i := range w.days[d] {
			if !w.days[d][i].Equal(other.days[d][i]) {
				return false
			}
		}
	}
	return true
}

func (w WeeklySchedule) clone() WeeklySchedule {
	var out WeeklySchedule
	for d, slots := range w.days {
		if len(slots) > 0 {
			out.days[d] = append([]TimeSlot(nil), slots...)
		}
	}
	return out
}

func sortedCopy(slots []TimeSlot) []TimeSlot {
	out := append([]TimeSlot(nil), slots...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].open < out[j].open
	})
	return out
}

// --------------------------------------------------
// JSON
// --------------------------------------------------

func (w WeeklySchedule) MarshalJSON() ([]byte, error) {
	raw := make(map[string][]TimeSlot, 7)
	for _, d := range Weekdays {
		slots := w.days[d]
		if slots == nil {
			slots = []TimeSlot{}
		}
		raw[d.String()] = slots
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts the per-day object keyed by the exact lowercase
// labels. Absent or null days are closed; any other key is rejected.
func (w *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string][]TimeSlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	days := make(map[Weekday][]TimeSlot, len(raw))
	for label, slots := range raw {
		d, ok := weekdayByLabel(label)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWeekday, label)
		}
		days[d] = slots
	}

	*w = NewWeeklySchedule(days)
	return nil
}

// --------------------------------------------------
// database/sql (jsonb column)
// --------------------------------------------------

func (w WeeklySchedule) Value() (driver.Value, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *WeeklySchedule) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*w = WeeklySchedule{}
		return nil
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return errors.New("operatinghours: unsupported scan type")
	}
}

// GormDataType lets AutoMigrate create the column as jsonb.
func (WeeklySchedule) GormDataType() string {
	return "jsonb"
}
