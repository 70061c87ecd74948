package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

// GetByEmployeeAndDate implements attendance.AttendanceLogRepository.
func (r *attendanceLogRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.date, l.notes, l.created_at, l.updated_at,
			   e.full_name AS employee_name
		FROM attendance_logs l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		  AND l.date = $2
		LIMIT 1
	`

	var log attendance.AttendanceLog
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&log.ID, &log.EmployeeID, &log.Date, &log.Notes, &log.CreatedAt, &log.UpdatedAt,
		&log.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no recorded activity for this day
		}
		return nil, fmt.Errorf("failed to get attendance log: %w", err)
	}

	if err := r.loadEntries(ctx, &log); err != nil {
		return nil, err
	}

	return &log, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceLogRepository.
func (r *attendanceLogRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceLog, error) {
	return r.list(ctx, "l.employee_id = $1 AND l.date >= $2 AND l.date <= $3", employeeID, start, end)
}

// ListByRange implements attendance.AttendanceLogRepository.
func (r *attendanceLogRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceLog, error) {
	return r.list(ctx, "l.date >= $1 AND l.date <= $2", start, end)
}

func (r *attendanceLogRepository) list(ctx context.Context, where string, args ...interface{}) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.date, l.notes, l.created_at, l.updated_at,
			   e.full_name AS employee_name
		FROM attendance_logs l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.date ASC, l.employee_id ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		var log attendance.AttendanceLog
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.Date, &log.Notes, &log.CreatedAt, &log.UpdatedAt,
			&log.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	for i := range logs {
		if err := r.loadEntries(ctx, &logs[i]); err != nil {
			return nil, err
		}
	}

	return logs, nil
}

// loadEntries fills a log's sessions and breaks in stored (position) order.
func (r *attendanceLogRepository) loadEntries(ctx context.Context, log *attendance.AttendanceLog) error {
	q := GetQuerier(ctx, r.db)

	sessionRows, err := q.Query(ctx, `
		SELECT start_time, end_time
		FROM attendance_sessions
		WHERE log_id = $1
		ORDER BY position ASC
	`, log.ID)
	if err != nil {
		return fmt.Errorf("failed to query sessions: %w", err)
	}
	defer sessionRows.Close()

	for sessionRows.Next() {
		var session attendance.Session
		if err := sessionRows.Scan(&session.StartTime, &session.EndTime); err != nil {
			return fmt.Errorf("failed to scan session: %w", err)
		}
		log.Sessions = append(log.Sessions, session)
	}
	if err := sessionRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate sessions: %w", err)
	}

	breakRows, err := q.Query(ctx, `
		SELECT start_time, end_time, break_type
		FROM attendance_breaks
		WHERE log_id = $1
		ORDER BY position ASC
	`, log.ID)
	if err != nil {
		return fmt.Errorf("failed to query breaks: %w", err)
	}
	defer breakRows.Close()

	for breakRows.Next() {
		var br attendance.BreakEntry
		if err := breakRows.Scan(&br.StartTime, &br.EndTime, &br.BreakType); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		log.Breaks = append(log.Breaks, br)
	}
	if err := breakRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate breaks: %w", err)
	}

	return nil
}

// Replace implements attendance.AttendanceLogRepository. The log's sessions
// and breaks are rebuilt wholesale inside one transaction so a failed
// validation can never leave a partially edited day behind.
func (r *attendanceLogRepository) Replace(ctx context.Context, employeeID string, date time.Time, payload attendance.ValidatedPayload) (attendance.AttendanceLog, error) {
	log := attendance.AttendanceLog{
		EmployeeID: employeeID,
		Date:       date,
		Sessions:   payload.Sessions,
		Breaks:     payload.Breaks,
		Notes:      payload.Notes,
	}

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO attendance_logs (id, employee_id, date, notes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, date)
			DO UPDATE SET notes = EXCLUDED.notes, updated_at = NOW()
			RETURNING id, created_at, updated_at
		`, uuid.NewString(), employeeID, date, payload.Notes).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert attendance log: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM attendance_sessions WHERE log_id = $1`, log.ID); err != nil {
			return fmt.Errorf("failed to clear sessions: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM attendance_breaks WHERE log_id = $1`, log.ID); err != nil {
			return fmt.Errorf("failed to clear breaks: %w", err)
		}

		for i, session := range payload.Sessions {
			_, err := tx.Exec(ctx, `
				INSERT INTO attendance_sessions (id, log_id, position, start_time, end_time)
				VALUES ($1, $2, $3, $4, $5)
			`, uuid.NewString(), log.ID, i, session.StartTime, session.EndTime)
			if err != nil {
				return fmt.Errorf("failed to insert session: %w", err)
			}
		}

		for i, br := range payload.Breaks {
			_, err := tx.Exec(ctx, `
				INSERT INTO attendance_breaks (id, log_id, position, start_time, end_time, break_type)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.NewString(), log.ID, i, br.StartTime, br.EndTime, string(br.BreakType))
			if err != nil {
				return fmt.Errorf("failed to insert break: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return attendance.AttendanceLog{}, err
	}

	return log, nil
}

// Delete implements attendance.AttendanceLogRepository.
func (r *attendanceLogRepository) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM attendance_logs
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}

	return nil
}

func NewAttendanceLogRepository(db *database.DB) attendance.AttendanceLogRepository {
	return &attendanceLogRepository{db: db}
}
