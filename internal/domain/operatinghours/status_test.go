package operatinghours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 was a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func schedule(days map[Weekday][]TimeSlot) *WeeklySchedule {
	s := NewWeeklySchedule(days)
	return &s
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		schedule *WeeklySchedule
		at       time.Time
		want     Status
	}{
		{
			name:     "unknown hours",
			schedule: nil,
			at:       at(1, 10, 0),
			want:     Status{},
		},
		{
			name:     "open, closes today",
			schedule: schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("08:00", "18:00")}}),
			at:       at(1, 10, 0),
			want:     Status{IsOpen: true, NextChange: &NextChange{Type: ChangeCloses, Time: "18:00"}},
		},
		{
			name:     "opening minute is open",
			schedule: schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("08:00", "18:00")}}),
			at:       at(1, 8, 0),
			want:     Status{IsOpen: true, NextChange: &NextChange{Type: ChangeCloses, Time: "18:00"}},
		},
		{
			name:     "opens later today",
			schedule: schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("14:00", "18:00")}}),
			at:       at(1, 9, 0),
			want:     Status{NextChange: &NextChange{Type: ChangeOpens, Time: "14:00"}},
		},
		{
			name: "lunch break, reopens today",
			schedule: schedule(map[Weekday][]TimeSlot{
				Monday: {MustTimeSlot("08:00", "12:00"), MustTimeSlot("13:00", "18:00")},
			}),
			at:   at(1, 12, 30),
			want: Status{NextChange: &NextChange{Type: ChangeOpens, Time: "13:00"}},
		},
		{
			name: "next day with closed day between",
			schedule: schedule(map[Weekday][]TimeSlot{
				Monday:    {MustTimeSlot("08:00", "12:00")},
				Tuesday:   {},
				Wednesday: {MustTimeSlot("09:00", "17:00")},
			}),
			at:   at(2, 10, 0),
			want: Status{NextChange: &NextChange{Type: ChangeOpens, Time: "09:00", Day: "Wed"}},
		},
		{
			name:     "after closing, wraps past saturday",
			schedule: schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("08:00", "12:00")}}),
			at:       at(6, 20, 0),
			want:     Status{NextChange: &NextChange{Type: ChangeOpens, Time: "08:00", Day: "Mon"}},
		},
		{
			name:     "only today, already closed, nothing in the next six days",
			schedule: schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("08:00", "12:00")}}),
			at:       at(1, 13, 0),
			want:     Status{},
		},
		{
			name:     "closed all week",
			schedule: schedule(nil),
			at:       at(3, 10, 0),
			want:     Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.schedule, tt.at))
		})
	}
}

func TestEvaluate_ClosingMinuteDiffersFromContains(t *testing.T) {
	slot := MustTimeSlot("08:00", "18:00")
	s := schedule(map[Weekday][]TimeSlot{Monday: {slot}})

	assert.True(t, slot.Contains("18:00"))
	assert.True(t, s.IsOpenAt(Monday, "18:00"))
	assert.False(t, Evaluate(s, at(1, 18, 0)).IsOpen)
}

func TestEvaluate_UsesInstantLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	s := schedule(map[Weekday][]TimeSlot{Monday: {MustTimeSlot("08:00", "18:00")}})

	// 11:00 UTC on Monday is 08:00 in BRT.
	instant := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	assert.True(t, Evaluate(s, instant.In(loc)).IsOpen)
}

func TestEvaluate_Idempotent(t *testing.T) {
	s := schedule(map[Weekday][]TimeSlot{Wednesday: {MustTimeSlot("09:00", "17:00")}})
	ref := at(2, 10, 0)

	first := Evaluate(s, ref)
	second := Evaluate(s, ref)
	assert.Equal(t, first, second)
}

func TestStatus_Summary(t *testing.T) {
	assert.Equal(t, "Open · Closes 18:00",
		Status{IsOpen: true, NextChange: &NextChange{Type: ChangeCloses, Time: "18:00"}}.Summary())
	assert.Equal(t, "Closed · Opens 14:00",
		Status{NextChange: &NextChange{Type: ChangeOpens, Time: "14:00"}}.Summary())
	assert.Equal(t, "Closed · Opens Mon 08:00",
		Status{NextChange: &NextChange{Type: ChangeOpens, Time: "08:00", Day: "Mon"}}.Summary())
	assert.Equal(t, "Closed", Status{}.Summary())
}
