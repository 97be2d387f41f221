package shift

import "context"

type Service interface {
	List(ctx context.Context) ([]AssignmentResponse, error)
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
}
