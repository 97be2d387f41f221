package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/stafflow-backend-go/internal/domain/notice"
)

type ServiceImpl struct {
	noticeRepo notice.Repository
}

func NewNoticeService(noticeRepo notice.Repository) notice.Service {
	return &ServiceImpl{noticeRepo: noticeRepo}
}

// List implements notice.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]notice.NoticeResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	resp := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		resp = append(resp, toNoticeResponse(n))
	}

	return resp, nil
}

// Create implements notice.Service.
func (s *ServiceImpl) Create(ctx context.Context, req notice.CreateRequest, createdBy string) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	created, err := s.noticeRepo.Create(ctx, notice.Notice{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: createdBy,
	})
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notice: %w", err)
	}

	return toNoticeResponse(created), nil
}

// Delete implements notice.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.noticeRepo.Delete(ctx, id)
}

func toNoticeResponse(n notice.Notice) notice.NoticeResponse {
	return notice.NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
