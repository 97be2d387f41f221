package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/stafflow-backend-go/internal/domain/roster"
)

type stubRosterService struct {
	response roster.Response
	csv      []byte
	err      error
}

func (s *stubRosterService) BuildRoster(_ context.Context, filter roster.Filter) (roster.Response, error) {
	if err := filter.Validate(); err != nil {
		return roster.Response{}, err
	}
	return s.response, s.err
}

func (s *stubRosterService) ExportCSV(_ context.Context, filter roster.Filter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.csv, s.err
}

func TestRosterGet(t *testing.T) {
	handler := NewRosterHandler(&stubRosterService{
		response: roster.Response{
			StartDate: "2024-03-15",
			EndDate:   "2024-03-15",
			SingleDay: true,
			Summary:   roster.Summary{TotalEmployees: 3, Present: 2, OnLeave: 1},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster?date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    roster.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.SingleDay)
	assert.Equal(t, 2, body.Data.Summary.Present)
}

func TestRosterGetRequiresDateOrRange(t *testing.T) {
	handler := NewRosterHandler(&stubRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRosterExport(t *testing.T) {
	csv := []byte("Date,Employee,Email,EID,Status,Check-In,Late(min),Check-Out,Working,OT\n")
	handler := NewRosterHandler(&stubRosterService{csv: csv})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster/export?start_date=2024-03-01&end_date=2024-03-07", nil)
	rec := httptest.NewRecorder()
	handler.Export(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="attendance-2024-03-01-2024-03-07.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, csv, rec.Body.Bytes())
}
