package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// ListByRange returns holidays with dates in [start, end], tentative ones included.
	ListByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
