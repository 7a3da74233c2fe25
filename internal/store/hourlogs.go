package store

import (
	"fmt"
	"time"
)

// UpsertHourLog records (or overwrites) the log entry for one decimal hour
// of one day. Last write wins, matching how re-logging a block works.
func (s *Store) UpsertHourLog(account, day string, hour float64, activity string, focus, energy int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO hour_logs (account, day, hour, activity, focus, energy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(account, day, hour) DO UPDATE SET
		   activity = excluded.activity, focus = excluded.focus,
		   energy = excluded.energy, created_at = excluded.created_at`,
		account, day, hour, activity, focus, energy, now,
	)
	if err != nil {
		return fmt.Errorf("upsert hour log: %w", err)
	}
	return nil
}

// HourLogs returns one day's entries ordered by hour.
func (s *Store) HourLogs(account, day string) ([]HourLog, error) {
	return s.queryHourLogs(
		`SELECT id, account, day, hour, activity, focus, energy, created_at
		 FROM hour_logs WHERE account = ? AND day = ? ORDER BY hour`, account, day,
	)
}

// AllHourLogs returns every entry for the account across all days, the
// history input of the capacity predictor.
func (s *Store) AllHourLogs(account string) ([]HourLog, error) {
	return s.queryHourLogs(
		`SELECT id, account, day, hour, activity, focus, energy, created_at
		 FROM hour_logs WHERE account = ? ORDER BY day, hour`, account,
	)
}

func (s *Store) queryHourLogs(query string, args ...any) ([]HourLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hour logs: %w", err)
	}
	defer rows.Close()

	var logs []HourLog
	for rows.Next() {
		var l HourLog
		var createdAt string
		if err := rows.Scan(&l.ID, &l.Account, &l.Day, &l.Hour, &l.Activity, &l.Focus, &l.Energy, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
