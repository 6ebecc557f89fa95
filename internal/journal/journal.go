// Package journal persists activity types and their day-tagged activity
// log. It owns all storage concerns; the streak engine borrows the logged
// days read-only and never sees the database.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/streak"
)

// ErrTypeNotFound is returned when an activity type does not exist.
var ErrTypeNotFound = errors.New("activity type not found")

// ActivityType is one tracked streak (login, study, exercise, …) together
// with its rules.
type ActivityType struct {
	ID        int
	Name      string // short handle used on the command line
	Label     string // display label; falls back to Name when empty
	Rules     streak.Rules
	CreatedAt time.Time
}

// DisplayName returns the label, or the name when no label is set.
func (at ActivityType) DisplayName() string {
	if at.Label != "" {
		return at.Label
	}
	return at.Name
}

// Record is one logged occurrence of an activity on a calendar day.
// CapturedAt is informational only: streak math runs on Day alone.
type Record struct {
	ID         string // UUIDv4
	Day        dates.Day
	Note       string
	CapturedAt time.Time
}

// Store handles journal persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a journal store over an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AddType registers a new activity type. Rules are validated up front so a
// bad configuration never reaches the table.
func (s *Store) AddType(name, label string, rules streak.Rules) (*ActivityType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("activity type name is required")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	res, err := s.db.Exec(
		`INSERT INTO activity_types (name, label, grace_days, weekend_grace, count_future)
		 VALUES (?, ?, ?, ?, ?)`,
		name, strings.TrimSpace(label), rules.GraceDays,
		boolInt(rules.WeekendGrace), boolInt(rules.CountFuture),
	)
	if err != nil {
		return nil, fmt.Errorf("adding activity type: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.typeByID(int(id))
}

// GetType returns an activity type by name.
func (s *Store) GetType(name string) (*ActivityType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	row := s.db.QueryRow(
		`SELECT id, name, label, grace_days, weekend_grace, count_future, created_at
		 FROM activity_types WHERE name = ?`, name,
	)
	at, err := scanType(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
		}
		return nil, fmt.Errorf("getting activity type: %w", err)
	}
	return at, nil
}

// ListTypes returns all activity types ordered by name.
func (s *Store) ListTypes() ([]ActivityType, error) {
	rows, err := s.db.Query(
		`SELECT id, name, label, grace_days, weekend_grace, count_future, created_at
		 FROM activity_types ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []ActivityType
	for rows.Next() {
		at, err := scanType(rows.Scan)
		if err != nil {
			return nil, err
		}
		types = append(types, *at)
	}
	return types, rows.Err()
}

// UpdateRules replaces the streak rules of an activity type.
func (s *Store) UpdateRules(name string, rules streak.Rules) (*ActivityType, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	at, err := s.GetType(name)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(
		`UPDATE activity_types SET grace_days = ?, weekend_grace = ?, count_future = ? WHERE id = ?`,
		rules.GraceDays, boolInt(rules.WeekendGrace), boolInt(rules.CountFuture), at.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating rules: %w", err)
	}
	at.Rules = rules
	return at, nil
}

// Log records an activity for a day. The (type, day) pair is unique: a
// second log on the same day is collapsed to a no-op and reported via the
// created flag, which keeps re-evaluation idempotent.
func (s *Store) Log(typeName string, day dates.Day, note string) (created bool, err error) {
	at, err := s.GetType(typeName)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		`INSERT INTO activities (id, type_id, day, note) VALUES (?, ?, ?, ?)
		 ON CONFLICT(type_id, day) DO NOTHING`,
		uuid.New().String(), at.ID, day.String(), strings.TrimSpace(note),
	)
	if err != nil {
		return false, fmt.Errorf("logging activity: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Unlog removes the record for a day, if present.
func (s *Store) Unlog(typeName string, day dates.Day) (removed bool, err error) {
	at, err := s.GetType(typeName)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		`DELETE FROM activities WHERE type_id = ? AND day = ?`, at.ID, day.String(),
	)
	if err != nil {
		return false, fmt.Errorf("removing activity: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DaysAsc returns the distinct logged days for a type in ascending order —
// exactly the engine's input shape.
func (s *Store) DaysAsc(typeName string) ([]dates.Day, error) {
	at, err := s.GetType(typeName)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT day FROM activities WHERE type_id = ? ORDER BY day ASC`, at.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []dates.Day
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := dates.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt day in journal: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// Records returns the full log for a type, most recent day first.
func (s *Store) Records(typeName string) ([]Record, error) {
	at, err := s.GetType(typeName)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, day, note, logged_at FROM activities
		 WHERE type_id = ? ORDER BY day DESC`, at.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var rawDay, capturedStr string
		if err := rows.Scan(&r.ID, &rawDay, &r.Note, &capturedStr); err != nil {
			return nil, err
		}
		if r.Day, err = dates.Parse(rawDay); err != nil {
			return nil, fmt.Errorf("corrupt day in journal: %w", err)
		}
		r.CapturedAt, _ = time.Parse("2006-01-02 15:04:05", capturedStr)
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns the total number of logged days across all types.
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) typeByID(id int) (*ActivityType, error) {
	row := s.db.QueryRow(
		`SELECT id, name, label, grace_days, weekend_grace, count_future, created_at
		 FROM activity_types WHERE id = ?`, id,
	)
	return scanType(row.Scan)
}

// scanType reads one activity_types row via any Scan-shaped function.
func scanType(scan func(...any) error) (*ActivityType, error) {
	var at ActivityType
	var weekendInt, futureInt int
	var createdStr string
	if err := scan(&at.ID, &at.Name, &at.Label, &at.Rules.GraceDays,
		&weekendInt, &futureInt, &createdStr); err != nil {
		return nil, err
	}
	at.Rules.WeekendGrace = weekendInt == 1
	at.Rules.CountFuture = futureInt == 1
	at.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
	return &at, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
