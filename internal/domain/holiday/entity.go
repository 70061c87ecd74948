package holiday

import (
	"time"
)

// Holiday is one declared calendar holiday. A tentative holiday has no
// resolved date yet and never affects classification of a concrete day.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	IsTentative bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Declared reports whether h fixes the given calendar day as a holiday.
func (h Holiday) Declared(date time.Time) bool {
	if h.IsTentative {
		return false
	}
	return h.Date.Year() == date.Year() && h.Date.YearDay() == date.YearDay()
}
