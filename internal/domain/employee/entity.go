package employee

import (
	"time"
)

type Employee struct {
	ID             string
	FullName       string
	Email          *string
	JoiningDate    time.Time
	SaturdayPolicy SaturdayPolicy
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaturdayPolicy selects which Saturdays of the month are working days.
type SaturdayPolicy string

const (
	AllSaturdaysOff     SaturdayPolicy = "all_saturdays_off"
	Week1And3Off        SaturdayPolicy = "week_1_3_off"
	Week2And4Off        SaturdayPolicy = "week_2_4_off"
	AllSaturdaysWorking SaturdayPolicy = "all_saturdays_working"
)

// ResolveSaturdayPolicy maps a stored policy value to the enum,
// defaulting to all Saturdays working for unknown or empty values.
func ResolveSaturdayPolicy(raw string) SaturdayPolicy {
	switch SaturdayPolicy(raw) {
	case AllSaturdaysOff, Week1And3Off, Week2And4Off, AllSaturdaysWorking:
		return SaturdayPolicy(raw)
	}
	return AllSaturdaysWorking
}
