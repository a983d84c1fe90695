package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/splanner/internal/db"
	"github.com/alexanderramin/splanner/internal/domain"
)

// SQLiteCredentialRepo implements CredentialRepo using a SQLite database.
type SQLiteCredentialRepo struct {
	db db.DBTX
}

// NewSQLiteCredentialRepo creates a new SQLiteCredentialRepo.
func NewSQLiteCredentialRepo(conn db.DBTX) *SQLiteCredentialRepo {
	return &SQLiteCredentialRepo{db: conn}
}

const credentialColumns = `id, label, api_key, active, valid, created_at, updated_at`

func (r *SQLiteCredentialRepo) Create(ctx context.Context, c *domain.Credential) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := nowUTC()
	created := now
	if !c.CreatedAt.IsZero() {
		created = formatTime(c.CreatedAt)
	}
	query := `INSERT INTO credentials (` + credentialColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Label,
		c.APIKey,
		boolToInt(c.Active),
		boolToInt(c.Valid),
		created,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting credential: %w", err)
	}
	c.Source = domain.CredentialFromStored
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(now)
	return nil
}

func (r *SQLiteCredentialRepo) GetActive(ctx context.Context) (*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE active = 1
		ORDER BY created_at DESC LIMIT 1`
	c, err := scanCredential(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active credential: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning credential: %w", err)
	}
	return c, nil
}

func (r *SQLiteCredentialRepo) List(ctx context.Context) ([]*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}
	defer rows.Close()

	var out []*domain.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCredentialRepo) DeactivateAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE credentials SET active = 0, updated_at = ? WHERE active = 1`, nowUTC())
	if err != nil {
		return fmt.Errorf("deactivating credentials: %w", err)
	}
	return nil
}

func (r *SQLiteCredentialRepo) SetValid(ctx context.Context, id string, valid bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE credentials SET valid = ?, updated_at = ? WHERE id = ?`,
		boolToInt(valid), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating credential validity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("credential %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCredentialRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (*domain.Credential, error) {
	var (
		c                domain.Credential
		active, valid    int
		created, updated string
	)
	if err := row.Scan(&c.ID, &c.Label, &c.APIKey, &active, &valid, &created, &updated); err != nil {
		return nil, err
	}
	c.Source = domain.CredentialFromStored
	c.Active = intToBool(active)
	c.Valid = intToBool(valid)
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(updated)
	return &c, nil
}
