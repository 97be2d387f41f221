package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflow/stafflow-backend-go/internal/domain/notice"
	"github.com/stafflow/stafflow-backend-go/internal/handler/http/response"
)

type NoticeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoticeHandlerImpl struct {
	noticeService notice.Service
}

func NewNoticeHandler(noticeService notice.Service) NoticeHandler {
	return &NoticeHandlerImpl{noticeService: noticeService}
}

// List implements NoticeHandler.
func (n *NoticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	notices, err := n.noticeService.List(r.Context())
	if err != nil {
		slog.Error("List notices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notices)
}

// Create implements NoticeHandler.
func (n *NoticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq notice.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create notice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createdBy := "system"
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if email, ok := claims["email"].(string); ok && email != "" {
			createdBy = email
		}
	}

	created, err := n.noticeService.Create(r.Context(), createReq, createdBy)
	if err != nil {
		slog.Error("Create notice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Notice created", "id", created.ID)
	response.Created(w, "Notice created", created)
}

// Delete implements NoticeHandler.
func (n *NoticeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := n.noticeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete notice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Notice deleted", "id", id)
	response.SuccessWithMessage(w, "Notice deleted", nil)
}
