package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const currentAccountKey = "current_account"

// SetActiveAccount persists the account as the current session, replacing
// any prior session.
func (s *Store) SetActiveAccount(a *Account) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		currentAccountKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// ActiveAccount returns the persisted session account, or nil if there is
// none. A corrupt payload reads as "no session", not an error.
func (s *Store) ActiveAccount() (*Account, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, currentAccountKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var a Account
	if err := json.Unmarshal([]byte(value), &a); err != nil || a.Identifier == "" {
		return nil, nil
	}
	return &a, nil
}

// ClearActiveAccount removes the persisted session.
func (s *Store) ClearActiveAccount() error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, currentAccountKey)
	return err
}

// setRawState is a test hook for planting arbitrary state payloads.
func (s *Store) setRawState(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
