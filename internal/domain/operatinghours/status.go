package operatinghours

import (
	"fmt"
	"time"
)

type ChangeType string

const (
	ChangeOpens  ChangeType = "opens"
	ChangeCloses ChangeType = "closes"
)

// NextChange describes the next open/close transition. Day is empty when
// the transition happens today.
type NextChange struct {
	Type ChangeType `json:"type"`
	Time string     `json:"time"`
	Day  string     `json:"day,omitempty"`
}

type Status struct {
	IsOpen     bool        `json:"isOpen"`
	NextChange *NextChange `json:"nextChange"`
}

// Evaluate computes the status of schedule at the instant at, read in at's
// own location. A nil schedule means hours are unknown and is reported as
// closed with no next change.
//
// The open check here is half-open (open <= t < close), unlike
// TimeSlot.Contains: at the closing minute the point reports closed.
func Evaluate(schedule *WeeklySchedule, at time.Time) Status {
	if schedule == nil {
		return Status{}
	}

	today := WeekdayOf(at)
	now := fmt.Sprintf("%02d:%02d", at.Hour(), at.Minute())
	slots := schedule.days[today]

	for _, s := range slots {
		if now >= s.open && now < s.close {
			return Status{
				IsOpen:     true,
				NextChange: &NextChange{Type: ChangeCloses, Time: s.close},
			}
		}
	}

	for _, s := range slots {
		if now < s.open {
			return Status{
				NextChange: &NextChange{Type: ChangeOpens, Time: s.open},
			}
		}
	}

	for i := 1; i <= 6; i++ {
		day := today.Next(i)
		if next := schedule.days[day]; len(next) > 0 {
			return Status{
				NextChange: &NextChange{
					Type: ChangeOpens,
					Time: next[0].open,
					Day:  day.Abbrev(),
				},
			}
		}
	}

	return Status{}
}

// Summary renders the status as display copy, e.g. "Open · Closes 18:00".
func (s Status) Summary() string {
	head := "Closed"
	if s.IsOpen {
		head = "Open"
	}
	if s.NextChange == nil {
		return head
	}

	verb := "Opens"
	if s.NextChange.Type == ChangeCloses {
		verb = "Closes"
	}
	when := s.NextChange.Time
	if s.NextChange.Day != "" {
		when = s.NextChange.Day + " " + when
	}
	return head + " · " + verb + " " + when
}
