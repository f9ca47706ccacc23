package inquiries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campus-suite/campusctl/internal/common"
	"github.com/campus-suite/campusctl/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

func (r *SQLiteRepository) Add(ctx context.Context, kind Kind, payload []byte) (*Inquiry, error) {
	inq := &Inquiry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    StatusPending,
		Payload:   append([]byte(nil), payload...),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, kind, status, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, inq.ID, string(inq.Kind), inq.Status, string(inq.Payload), inq.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to add inquiry: %w", err)
	}
	return inq, nil
}

func (r *SQLiteRepository) List(ctx context.Context, kind Kind) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, status, payload, created_at FROM inquiries
		WHERE kind = ? ORDER BY created_at DESC, id
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var result []Inquiry
	for rows.Next() {
		var inq Inquiry
		var kindStr, payload, createdAt string
		if err := rows.Scan(&inq.ID, &kindStr, &inq.Status, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		inq.Kind = Kind(kindStr)
		inq.Payload = []byte(payload)
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			inq.CreatedAt = ts
		}
		result = append(result, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiry rows: %w", err)
	}
	return result, nil
}

// UpdateStatus sets the status of one inquiry. The existence check and the
// update run in one transaction so a concurrent delete cannot slip between
// them.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var existing string
		err := tx.QueryRowContext(ctx, `SELECT id FROM inquiries WHERE id = ?`, id).Scan(&existing)
		if err == sql.ErrNoRows {
			return common.ErrorNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up inquiry %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE inquiries SET status = ? WHERE id = ?`, status, id); err != nil {
			return fmt.Errorf("failed to update inquiry %s: %w", id, err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete inquiry %s: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrorNotFound
		}
		return nil
	})
}
