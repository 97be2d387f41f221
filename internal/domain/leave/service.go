package leave

import "context"

type Service interface {
	List(ctx context.Context) ([]RequestResponse, error)
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, id string) (RequestResponse, error)
}
