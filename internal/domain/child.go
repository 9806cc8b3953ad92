package domain

import "time"

// DateLayout is the calendar format used for birth dates and appointment dates.
const DateLayout = "2006-01-02"

type Child struct {
	ID          uint      `json:"id"`
	ParentID    uint      `json:"parent_id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarDate drops the time of day, keeping the date t shows in its own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
