package leave

import "context"

type Repository interface {
	// ListAll returns every leave request regardless of range; filtering by
	// range and status happens in the roster derivation.
	ListAll(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, req Request) (Request, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) error
}
