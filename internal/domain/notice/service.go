package notice

import "context"

type Service interface {
	List(ctx context.Context) ([]NoticeResponse, error)
	Create(ctx context.Context, req CreateRequest, createdBy string) (NoticeResponse, error)
	Delete(ctx context.Context, id string) error
}
