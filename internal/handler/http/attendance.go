package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/stafflow/stafflow-backend-go/internal/domain/attendance"
	"github.com/stafflow/stafflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListOvertime(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	ListCheckIns(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func optionalQuery(r *http.Request, key string) *string {
	if value := r.URL.Query().Get(key); value != "" {
		return &value
	}
	return nil
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		EmployeeEmail: optionalQuery(r, "employee_email"),
		Search:        optionalQuery(r, "search"),
		Date:          optionalQuery(r, "date"),
		StartDate:     optionalQuery(r, "start_date"),
		EndDate:       optionalQuery(r, "end_date"),
		SortBy:        r.URL.Query().Get("sort_by"),
		SortOrder:     r.URL.Query().Get("sort_order"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	listResponse, err := a.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Records, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: listResponse.TotalPages,
	})
}

// ListOvertime implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListOvertime(w http.ResponseWriter, r *http.Request) {
	filter := attendance.OvertimeFilter{
		EmployeeEmail: optionalQuery(r, "employee_email"),
		StartDate:     optionalQuery(r, "start_date"),
		EndDate:       optionalQuery(r, "end_date"),
		GroupBy:       r.URL.Query().Get("group_by"),
	}

	buckets, err := a.attendanceService.ListOvertime(r.Context(), filter)
	if err != nil {
		slog.Error("List overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, buckets)
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	checkInResponse, err := a.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_email", checkInReq.EmployeeEmail)
	response.Created(w, "Checked in successfully", checkInResponse)
}

// ListCheckIns implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	events, err := a.attendanceService.ListCheckIns(r.Context(), date)
	if err != nil {
		slog.Error("ListCheckIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
