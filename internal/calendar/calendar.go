// Package calendar lays pastor schedules out on a month grid.
package calendar

import (
	"time"

	"github.com/changil/changilweb-server/internal/models"
)

const (
	// DaysPerWeek is the number of columns in the grid.
	DaysPerWeek = 7
	// Weeks is the number of rows; six rows fit every month.
	Weeks = 6
)

// Segment tells how a schedule bar is drawn on a given day.
type Segment string

const (
	SegmentSingle Segment = "single"
	SegmentStart  Segment = "start"
	SegmentMiddle Segment = "middle"
	SegmentEnd    Segment = "end"
)

// Placement is a schedule drawn on one day of the grid. The title is only
// printed on the last day of a span.
type Placement struct {
	Schedule  *models.PastorSchedule `json:"schedule"`
	Segment   Segment                `json:"segment"`
	ShowTitle bool                   `json:"showTitle"`
}

// Day is one cell of the grid.
type Day struct {
	Date      time.Time   `json:"date"`
	Day       int         `json:"day"`
	InMonth   bool        `json:"inMonth"`
	IsToday   bool        `json:"isToday"`
	IsSunday  bool        `json:"isSunday"`
	Schedules []Placement `json:"schedules"`
}

// Month is a 6x7 grid starting on the Sunday on or before the 1st.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Days  []Day      `json:"days"`
}

// Weeks splits the grid into rows of seven days.
func (m *Month) Weeks() [][]Day {
	rows := make([][]Day, 0, Weeks)
	for i := 0; i+DaysPerWeek <= len(m.Days); i += DaysPerWeek {
		rows = append(rows, m.Days[i:i+DaysPerWeek])
	}
	return rows
}

// Build returns the grid for year/month in loc. today marks the current
// day. A schedule covers every day from its start day through its end day
// inclusive; without an end date it covers its start day only.
func Build(year int, month time.Month, today time.Time, schedules []*models.PastorSchedule, loc *time.Location) *Month {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	todayStart := startOfDay(today, loc)

	m := &Month{
		Year:  year,
		Month: month,
		Days:  make([]Day, 0, Weeks*DaysPerWeek),
	}
	for i := 0; i < Weeks*DaysPerWeek; i++ {
		date := gridStart.AddDate(0, 0, i)
		m.Days = append(m.Days, Day{
			Date:      date,
			Day:       date.Day(),
			InMonth:   date.Month() == month,
			IsToday:   date.Equal(todayStart),
			IsSunday:  date.Weekday() == time.Sunday,
			Schedules: placementsOn(date, schedules, loc),
		})
	}
	return m
}

// MonthRange returns the first and last instant of a month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

func placementsOn(day time.Time, schedules []*models.PastorSchedule, loc *time.Location) []Placement {
	placements := []Placement{}
	for _, s := range schedules {
		first := startOfDay(s.StartDate, loc)
		last := startOfDay(s.LastDay(), loc)
		if day.Before(first) || day.After(last) {
			continue
		}

		var seg Segment
		switch {
		case first.Equal(last):
			seg = SegmentSingle
		case day.Equal(first):
			seg = SegmentStart
		case day.Equal(last):
			seg = SegmentEnd
		default:
			seg = SegmentMiddle
		}
		placements = append(placements, Placement{
			Schedule:  s,
			Segment:   seg,
			ShowTitle: day.Equal(last),
		})
	}
	return placements
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
