package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/domain/holiday"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, is_tentative, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.IsTentative, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
