package rest

import (
	"net/http"
	"testing"

	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util/values"
	"github.com/stretchr/testify/assert"
)

func TestCreateReportMissingFields(t *testing.T) {
	api := newTestAPI()

	tests := []struct {
		name string
		req  model.CreateReportRequest
	}{
		{"all blank", model.CreateReportRequest{}},
		{"missing title", model.CreateReportRequest{Category: "corruption", Description: "bribe demanded", County: "Nairobi"}},
		{"missing category", model.CreateReportRequest{Title: "Bribery at permit office", Description: "bribe demanded", County: "Nairobi"}},
		{"missing description", model.CreateReportRequest{Title: "Bribery at permit office", Category: "corruption", County: "Nairobi"}},
		{"missing county", model.CreateReportRequest{Title: "Bribery at permit office", Category: "corruption", Description: "bribe demanded"}},
		{"whitespace county", model.CreateReportRequest{Title: "Bribery at permit office", Category: "corruption", Description: "bribe demanded", County: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, api, http.MethodPost, "/api/reports/", tt.req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, values.BadRequestBody, resp.Status)
			assert.Equal(t, "Please fill in all required fields: Title, Category, Description, and County", resp.Error)
		})
	}
}

func TestCreateReportRejectsMalformedJSON(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodPost, "/api/reports/", "not an object")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unable to decode request", resp.Error)
}

func TestGetAllReportsRejectsBadAuthorID(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodGet, "/api/reports/?author_id=not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid author ID", resp.Error)
}

func TestReportRoutesRejectBadID(t *testing.T) {
	api := newTestAPI()

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"get", http.MethodGet, "/api/reports/abc", nil},
		{"update", http.MethodPut, "/api/reports/abc", model.UpdateReportRequest{}},
		{"delete", http.MethodDelete, "/api/reports/abc", nil},
		{"status", http.MethodPatch, "/api/reports/abc/status", model.UpdateReportStatusRequest{Status: values.ReportStatusResolved}},
		{"upvote", http.MethodPost, "/api/reports/abc/upvotes", nil},
		{"upvotes list", http.MethodGet, "/api/reports/abc/upvotes", nil},
		{"evidence", http.MethodPost, "/api/reports/abc/evidence", model.AddEvidenceRequest{File: "https://example.com/a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, api, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid report ID", resp.Error)
		})
	}
}

func TestUpdateReportStatusRejectsUnknownStatus(t *testing.T) {
	api := newTestAPI()

	for _, status := range []string{"archived", "Pending", ""} {
		rec, resp := doRequest(t, api, http.MethodPatch,
			"/api/reports/6f1d9a66-3a24-4a7e-9454-1a2bc1e60a01/status",
			model.UpdateReportStatusRequest{Status: status})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid status. Must be one of: pending, reviewing, resolved, closed", resp.Error)
	}
}

func TestUpdateReportRejectsBadDate(t *testing.T) {
	api := newTestAPI()

	date := "yesterday"
	rec, resp := doRequest(t, api, http.MethodPut,
		"/api/reports/6f1d9a66-3a24-4a7e-9454-1a2bc1e60a01",
		model.UpdateReportRequest{Date: &date})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid date format", resp.Error)
}

func TestAddReportEvidenceRequiresFile(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodPost,
		"/api/reports/6f1d9a66-3a24-4a7e-9454-1a2bc1e60a01/evidence",
		model.AddEvidenceRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File is required", resp.Error)
}
