// Package backup exports and imports the ember journal as an
// age-encrypted snapshot. The snapshot is plaintext JSON (activity types,
// rules, and records) encrypted with a passphrase (age scrypt) and
// armored, so a backup file is safe to sync or mail around.
//
// Import validates the whole snapshot before touching the database and
// restores it inside a single transaction.
package backup

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"encoding/json"

	"filippo.io/age"
	"filippo.io/age/armor"
	"github.com/google/uuid"

	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/streak"
)

// ErrWrongPassphrase is returned when decryption fails due to a bad passphrase.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// ErrCorruptedBackup is returned when a backup decrypts but cannot be parsed.
var ErrCorruptedBackup = errors.New("backup file is corrupted or unreadable")

// Snapshot is the plaintext JSON layout inside an encrypted backup.
type Snapshot struct {
	ExportedAt time.Time      `json:"exported_at"`
	Types      []SnapshotType `json:"types"`
}

// SnapshotType carries one activity type with its rules and full log.
type SnapshotType struct {
	Name         string           `json:"name"`
	Label        string           `json:"label,omitempty"`
	GraceDays    int              `json:"grace_days"`
	WeekendGrace bool             `json:"weekend_grace"`
	CountFuture  bool             `json:"count_future,omitempty"`
	Records      []SnapshotRecord `json:"records"`
}

// SnapshotRecord is one logged day.
type SnapshotRecord struct {
	Day  string `json:"day"`
	Note string `json:"note,omitempty"`
}

// Export writes the encrypted journal snapshot to w.
func Export(js *journal.Store, passphrase string, now time.Time, w io.Writer) error {
	snap, err := buildSnapshot(js, now)
	if err != nil {
		return err
	}
	raw, err := encrypt(snap, passphrase)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// Import decrypts a snapshot from r and restores it into db, replacing the
// journal contents entirely. No merge is performed. The snapshot is fully
// validated (rules and day values) before the existing data is touched.
func Import(db *sql.DB, passphrase string, r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	snap, err := decrypt(raw, passphrase)
	if err != nil {
		return nil, err
	}
	if err := validate(snap); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting restore: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return nil, fmt.Errorf("clearing activities: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM activity_types`); err != nil {
		return nil, fmt.Errorf("clearing activity types: %w", err)
	}

	for _, st := range snap.Types {
		res, err := tx.Exec(
			`INSERT INTO activity_types (name, label, grace_days, weekend_grace, count_future)
			 VALUES (?, ?, ?, ?, ?)`,
			st.Name, st.Label, st.GraceDays, boolInt(st.WeekendGrace), boolInt(st.CountFuture),
		)
		if err != nil {
			return nil, fmt.Errorf("restoring type %q: %w", st.Name, err)
		}
		typeID, _ := res.LastInsertId()

		for _, rec := range st.Records {
			if _, err := tx.Exec(
				`INSERT INTO activities (id, type_id, day, note) VALUES (?, ?, ?, ?)
				 ON CONFLICT(type_id, day) DO NOTHING`,
				newRecordID(), typeID, rec.Day, rec.Note,
			); err != nil {
				return nil, fmt.Errorf("restoring %s/%s: %w", st.Name, rec.Day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing restore: %w", err)
	}
	return snap, nil
}

func buildSnapshot(js *journal.Store, now time.Time) (*Snapshot, error) {
	types, err := js.ListTypes()
	if err != nil {
		return nil, fmt.Errorf("listing types: %w", err)
	}

	snap := &Snapshot{ExportedAt: now.UTC()}
	for _, at := range types {
		st := SnapshotType{
			Name:         at.Name,
			Label:        at.Label,
			GraceDays:    at.Rules.GraceDays,
			WeekendGrace: at.Rules.WeekendGrace,
			CountFuture:  at.Rules.CountFuture,
		}
		records, err := js.Records(at.Name)
		if err != nil {
			return nil, fmt.Errorf("reading %q records: %w", at.Name, err)
		}
		for _, r := range records {
			st.Records = append(st.Records, SnapshotRecord{Day: r.Day.String(), Note: r.Note})
		}
		snap.Types = append(snap.Types, st)
	}
	return snap, nil
}

// validate checks every rule set and day value before a restore commits.
func validate(snap *Snapshot) error {
	for _, st := range snap.Types {
		if st.Name == "" {
			return fmt.Errorf("%w: unnamed activity type", ErrCorruptedBackup)
		}
		rules := streak.Rules{GraceDays: st.GraceDays, WeekendGrace: st.WeekendGrace, CountFuture: st.CountFuture}
		if err := rules.Validate(); err != nil {
			return fmt.Errorf("type %q: %w", st.Name, err)
		}
		for _, rec := range st.Records {
			if _, err := dates.Parse(rec.Day); err != nil {
				return fmt.Errorf("type %q: %w", st.Name, err)
			}
		}
	}
	return nil
}

// encrypt serializes and encrypts a snapshot using age scrypt.
func encrypt(snap *Snapshot, passphrase string) ([]byte, error) {
	jsonBytes, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serializing backup: %w", err)
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age recipient: %w", err)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing age encryption: %w", err)
	}

	if _, err := w.Write(jsonBytes); err != nil {
		return nil, fmt.Errorf("encrypting backup: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}

	return buf.Bytes(), nil
}

// decrypt decrypts and deserializes a snapshot from age-encrypted bytes.
func decrypt(raw []byte, passphrase string) (*Snapshot, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age identity: %w", err)
	}

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(raw)), identity)
	if err != nil {
		if isBadPassphrase(err) {
			return nil, ErrWrongPassphrase
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptedBackup, err)
	}

	jsonBytes, err := io.ReadAll(r)
	if err != nil {
		// age authenticates while streaming, so a wrong passphrase can
		// also surface here.
		return nil, ErrWrongPassphrase
	}

	var snap Snapshot
	if err := json.Unmarshal(jsonBytes, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedBackup, err)
	}
	return &snap, nil
}

func isBadPassphrase(err error) bool {
	var no *age.NoIdentityMatchError
	return errors.As(err, &no)
}

// newRecordID mints a fresh uuid for a restored record. Backup files carry
// no record IDs on purpose: identity is (type, day), IDs are storage-local.
func newRecordID() string {
	return uuid.New().String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
