package entity

import "time"

// Doctor represents a provider in the static schedule catalog.
// The catalog is loaded once at startup and never mutated.
type Doctor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	// Time is the display window shown to patients, e.g. "10:00 AM - 01:00 PM".
	// It is not parsed for scheduling decisions.
	Time string `json:"time"`
	// Days holds weekday indices the doctor accepts bookings on, 0=Monday..6=Sunday.
	Days []int `json:"days"`
}

// IsAvailableOn reports whether the doctor accepts bookings on the weekday of date.
func (d *Doctor) IsAvailableOn(date time.Time) bool {
	// time.Weekday counts from Sunday=0; the catalog counts from Monday=0.
	weekday := (int(date.Weekday()) + 6) % 7
	for _, day := range d.Days {
		if day == weekday {
			return true
		}
	}
	return false
}
