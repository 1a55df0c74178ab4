package operatinghours

import (
	"fmt"
	"strings"
	"time"
)

// Weekday follows time.Weekday numbering: Sunday=0 ... Saturday=6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays is the storage/display order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var labels = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var abbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var labelsPT = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// weekdayByLabel matches the storage label exactly.
func weekdayByLabel(label string) (Weekday, bool) {
	for i, v := range labels {
		if v == label {
			return Weekday(i), true
		}
	}
	return 0, false
}

// ParseWeekday is lenient about case and surrounding spaces, for query
// parameters. Stored and JSON labels go through weekdayByLabel.
func ParseWeekday(label string) (Weekday, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	for i, v := range labels {
		if v == l {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, label)
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the lowercase storage label ("monday").
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return labels[d]
}

func (d Weekday) Abbrev() string {
	if !d.Valid() {
		return ""
	}
	return abbrevs[d]
}

func (d Weekday) LabelPT() string {
	if !d.Valid() {
		return ""
	}
	return labelsPT[d]
}

// Next returns the day n days after d, wrapping after Saturday.
func (d Weekday) Next(n int) Weekday {
	return Weekday(((int(d)+n)%7 + 7) % 7)
}
