package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/stafflow-backend-go/internal/domain/notice"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
)

type noticeRepositoryImpl struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.Repository {
	return &noticeRepositoryImpl{db: db}
}

// List implements notice.Repository.
func (n *noticeRepositoryImpl) List(ctx context.Context) ([]notice.Notice, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		SELECT id, title, body, created_by, created_at, updated_at
		FROM notices
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var item notice.Notice
		err := rows.Scan(&item.ID, &item.Title, &item.Body, &item.CreatedBy, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		notices = append(notices, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

// Create implements notice.Repository.
func (n *noticeRepositoryImpl) Create(ctx context.Context, item notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		INSERT INTO notices (id, title, body, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, body, created_by, created_at, updated_at
	`

	var created notice.Notice
	err := q.QueryRow(ctx, query, item.ID, item.Title, item.Body, item.CreatedBy).Scan(
		&created.ID, &created.Title, &created.Body, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return notice.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}

	return created, nil
}

// Delete implements notice.Repository.
func (n *noticeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, n.db)

	query := `
		DELETE FROM notices
		WHERE id = $1
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notice.ErrNoticeNotFound
		}
		return fmt.Errorf("failed to delete notice: %w", err)
	}

	return nil
}
