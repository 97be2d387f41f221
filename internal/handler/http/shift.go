package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflow/stafflow-backend-go/internal/domain/shift"
	"github.com/stafflow/stafflow-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// List implements ShiftHandler.
func (s *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := s.shiftService.List(r.Context())
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// Assign implements ShiftHandler.
func (s *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq shift.AssignRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.EmployeeEmail = chi.URLParam(r, "email")

	assigned, err := s.shiftService.Assign(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift assigned", "employee_email", assigned.EmployeeEmail, "shift_name", assigned.ShiftName)
	response.SuccessWithMessage(w, "Shift assigned", assigned)
}
