package notice

import "context"

type Repository interface {
	List(ctx context.Context) ([]Notice, error)
	Create(ctx context.Context, n Notice) (Notice, error)
	Delete(ctx context.Context, id string) error
}
