package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapshelf/service/internal/photo"
)

// Postgres stores records in the photos table. Keys are the row UUIDs.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a new Postgres store with the given connection pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// Insert adds a record and sets p.ID to the generated UUID.
func (r *Postgres) Insert(ctx context.Context, p *photo.Photo) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO photos (file_name, serving_url, upload_date)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.FileName, p.ServingURL, p.UploadDate,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// List returns every record, oldest first.
func (r *Postgres) List(ctx context.Context) ([]photo.Photo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, file_name, serving_url, upload_date
		 FROM photos ORDER BY upload_date, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos, err := pgx.CollectRows(rows, scanPhoto)
	if err != nil {
		return nil, fmt.Errorf("scan photos: %w", err)
	}
	return photos, nil
}

// Get fetches a record by its UUID.
func (r *Postgres) Get(ctx context.Context, id string) (*photo.Photo, error) {
	key, err := parseUUIDKey(id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, file_name, serving_url, upload_date
		 FROM photos WHERE id = $1`,
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("get photo by id: %w", err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanPhoto)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, photo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get photo by id: %w", err)
	}
	return &p, nil
}

// Delete removes a record by its UUID.
func (r *Postgres) Delete(ctx context.Context, id string) error {
	key, err := parseUUIDKey(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, key)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photo.ErrNotFound
	}
	return nil
}

func scanPhoto(row pgx.CollectableRow) (photo.Photo, error) {
	var p photo.Photo
	err := row.Scan(&p.ID, &p.FileName, &p.ServingURL, &p.UploadDate)
	return p, err
}
