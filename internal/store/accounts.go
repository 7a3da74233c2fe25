package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CreateAccount registers a new account. The identifier is case-sensitive
// and must be unique; a taken identifier yields ErrDuplicateAccount and
// leaves the existing account untouched.
func (s *Store) CreateAccount(identifier, displayName, secret string) (*Account, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, &ValidationError{Field: "identifier", Reason: "must not be empty"}
	}
	if secret == "" {
		return nil, &ValidationError{Field: "secret", Reason: "must not be empty"}
	}

	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE identifier = ?`, identifier).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}
	if exists > 0 {
		return nil, ErrDuplicateAccount
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT INTO accounts (identifier, display_name, secret, created_at) VALUES (?, ?, ?, ?)`,
		identifier, displayName, secret, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return s.GetAccount(identifier)
}

// Authenticate verifies a login attempt. Secrets are compared by exact
// string equality; hashing is an explicit non-goal of this tool.
func (s *Store) Authenticate(identifier, secret string) (*Account, error) {
	a, err := s.GetAccount(identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if a.Secret != secret {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Store) GetAccount(identifier string) (*Account, error) {
	a := &Account{}
	var createdAt string
	err := s.db.QueryRow(
		`SELECT identifier, display_name, secret, created_at FROM accounts WHERE identifier = ?`, identifier,
	).Scan(&a.Identifier, &a.DisplayName, &a.Secret, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("get account %q: %w", identifier, err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}

func (s *Store) ListAccounts() ([]Account, error) {
	rows, err := s.db.Query(`SELECT identifier, display_name, secret, created_at FROM accounts ORDER BY identifier`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		var createdAt string
		if err := rows.Scan(&a.Identifier, &a.DisplayName, &a.Secret, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
