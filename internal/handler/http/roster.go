package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
	"github.com/stafflow/stafflow-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

func rosterFilterFromQuery(r *http.Request) roster.Filter {
	return roster.Filter{
		Date:          optionalQuery(r, "date"),
		StartDate:     optionalQuery(r, "start_date"),
		EndDate:       optionalQuery(r, "end_date"),
		EmployeeEmail: optionalQuery(r, "employee_email"),
		Search:        optionalQuery(r, "search"),
	}
}

// Get implements RosterHandler.
func (h *RosterHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rosterResponse, err := h.rosterService.BuildRoster(r.Context(), rosterFilterFromQuery(r))
	if err != nil {
		slog.Error("Build roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rosterResponse)
}

// Export implements RosterHandler.
func (h *RosterHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := rosterFilterFromQuery(r)

	csvBytes, err := h.rosterService.ExportCSV(r.Context(), filter)
	if err != nil {
		slog.Error("Export roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "attendance.csv"
	if filter.Date != nil {
		filename = fmt.Sprintf("attendance-%s.csv", *filter.Date)
	} else if filter.StartDate != nil && filter.EndDate != nil {
		filename = fmt.Sprintf("attendance-%s-%s.csv", *filter.StartDate, *filter.EndDate)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(csvBytes); err != nil {
		slog.Error("Export roster write error", "error", err)
	}
}
