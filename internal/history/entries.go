package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded CLI invocation that built or transformed an
// Orientation.
type Entry struct {
	EntryID     string
	CreatedAt   time.Time
	Command     string
	PackedByte  byte
	Description string
}

// Repository provides insert (Record) and read (List) operations over the
// entries table; entries are never updated or deleted.
type Repository struct {
	db *DB
}

// NewRepository creates a new history repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a new history entry and returns its ID.
func (r *Repository) Record(command string, packed byte, description string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO entries (entry_id, created_at, command, packed_byte, description)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), command, int(packed), description)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns up to limit entries, most recent first.
func (r *Repository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT entry_id, created_at, command, packed_byte, description
		FROM entries
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		var packed int
		if err := rows.Scan(&e.EntryID, &createdAt, &e.Command, &packed, &e.Description); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
		e.PackedByte = byte(packed)
		out = append(out, e)
	}
	return out, rows.Err()
}
