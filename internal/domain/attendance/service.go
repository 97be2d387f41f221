package attendance

import "context"

type Service interface {
	ListRecords(ctx context.Context, filter Filter) (ListRecordsResponse, error)
	ListOvertime(ctx context.Context, filter OvertimeFilter) ([]OvertimeBucketResponse, error)
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
	ListCheckIns(ctx context.Context, date string) ([]CheckInResponse, error)
}
