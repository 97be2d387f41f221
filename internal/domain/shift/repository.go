package shift

import "context"

type Repository interface {
	ListAssignments(ctx context.Context) ([]Assignment, error)
	GetByEmail(ctx context.Context, email string) (Assignment, error)
	Upsert(ctx context.Context, assignment Assignment) error
}
