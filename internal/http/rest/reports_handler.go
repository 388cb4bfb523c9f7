package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util"
	"github.com/mkamau2/jiseti/util/tracing"
	"github.com/mkamau2/jiseti/util/values"
)

func (api *API) ReportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateReport))
	mux.Method(http.MethodGet, "/", Handler(api.GetAllReports))
	mux.Method(http.MethodGet, "/{id}", Handler(api.GetReportByID))
	mux.Method(http.MethodPut, "/{id}", Handler(api.UpdateReport))
	mux.Method(http.MethodDelete, "/{id}", Handler(api.DeleteReport))
	mux.Method(http.MethodPatch, "/{id}/status", Handler(api.UpdateReportStatus))
	mux.Method(http.MethodPost, "/{id}/upvotes", Handler(api.UpvoteReport))
	mux.Method(http.MethodGet, "/{id}/upvotes", Handler(api.GetReportUpvotes))
	mux.Method(http.MethodPost, "/{id}/evidence", Handler(api.AddReportEvidence))

	return mux
}

func (api *API) CreateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.Title) || !util.NotBlank(req.Category) || !util.NotBlank(req.Description) || !util.NotBlank(req.County) {
		return respondWithError(nil, "Please fill in all required fields: Title, Category, Description, and County", values.BadRequestBody, &tc)
	}

	report, status, message, err := api.CreateReportHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) GetAllReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	query := r.URL.Query()
	limit, skip := util.ParsePagination(query, 10, 0)

	filter := model.ReportFilter{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Priority: query.Get("priority"),
		Limit:    limit,
		Skip:     skip,
	}

	if raw := query.Get("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return respondWithError(err, "invalid author ID", values.BadRequestBody, &tc)
		}
		filter.AuthorID = &authorID
	}

	reports, status, message, err := api.GetAllReportsHelper(r.Context(), filter)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reports,
	}
}

func (api *API) GetReportByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	report, status, message, err := api.GetReportByIDHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) UpdateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	var date *time.Time
	if req.Date != nil {
		parsed, parseErr := parseReportDate(*req.Date)
		if parseErr != nil {
			return respondWithError(parseErr, "invalid date format", values.BadRequestBody, &tc)
		}
		date = &parsed
	}

	report, status, message, err := api.UpdateReportHelper(r.Context(), id, req, date)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

// parseReportDate accepts RFC3339 timestamps or plain dates.
func parseReportDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (api *API) DeleteReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteReportHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) UpdateReportStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateReportStatusRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if validateErr := util.ValidateStruct(req); validateErr != nil {
		message := fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(values.ValidReportStatuses, ", "))
		return respondWithError(validateErr, message, values.BadRequestBody, &tc)
	}

	report, status, message, err := api.UpdateReportStatusHelper(r.Context(), id, req.Status)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) UpvoteReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	// The body is optional: anonymous upvotes carry no user id.
	var req model.UpvoteRequest
	if r.ContentLength > 0 {
		if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
			return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
		}
	}

	upvote, status, message, err := api.UpvoteReportHelper(r.Context(), id, req.UserID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       upvote,
	}
}

func (api *API) GetReportUpvotes(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	upvotes, status, message, err := api.GetReportUpvotesHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       upvotes,
	}
}

func (api *API) AddReportEvidence(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	var req model.AddEvidenceRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.File) {
		return respondWithError(nil, "File is required", values.BadRequestBody, &tc)
	}

	evidence, status, message, err := api.AddReportEvidenceHelper(r.Context(), id, req.File)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       evidence,
	}
}
