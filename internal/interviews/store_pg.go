package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PGStore persists records as JSONB rows in Postgres.
type PGStore struct {
	DB *sql.DB
}

func newRecordID() string {
	return uuid.NewString()
}

// Add inserts a record into the named collection as a single atomic insert.
func (s *PGStore) Add(ctx context.Context, collection string, record any) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%w: marshal record: %v", ErrPersistence, err)
	}

	id := newRecordID()
	const query = `
		INSERT INTO interview_records (id, collection, data, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := s.DB.ExecContext(ctx, query, id, collection, payload); err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", ErrPersistence, collection, err)
	}
	return id, nil
}

var _ Store = (*PGStore)(nil)
