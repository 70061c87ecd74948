package attendance

import (
	"fmt"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

// Normalizer converts a calendar day plus a wall-clock value into an absolute
// instant in the engine's configured location.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Combine parses value ("HH:MM", "HH:MM:SS" or a full RFC3339 timestamp) and
// anchors it on the given calendar day. Full timestamps keep their own day and
// are only converted into the configured location.
func (n *Normalizer) Combine(date time.Time, value string) (time.Time, error) {
	if t, ok := validator.IsValidDateTime(value); ok {
		return t.In(n.loc), nil
	}

	if t, ok := validator.IsValidClock(value); ok {
		return time.Date(date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, n.loc), nil
	}

	return time.Time{}, fmt.Errorf("%q: %w", value, attendance.ErrInvalidTime)
}

// AdjustForRollover pushes candidateEnd one day forward when it falls before
// start, inferring an overnight span. The rule is applied to each (start, end)
// pair on its own, never transitively across a batch of edits.
func (n *Normalizer) AdjustForRollover(start, candidateEnd time.Time) time.Time {
	if candidateEnd.Before(start) {
		return candidateEnd.AddDate(0, 0, 1)
	}
	return candidateEnd
}
