package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util"
	"github.com/mkamau2/jiseti/util/tracing"
	"github.com/mkamau2/jiseti/util/values"
)

func (api *API) CommentRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateComment))
	mux.Method(http.MethodGet, "/report/{reportID}", Handler(api.GetCommentsByReport))
	mux.Method(http.MethodGet, "/{id}", Handler(api.GetCommentByID))
	mux.Method(http.MethodPut, "/{id}", Handler(api.UpdateComment))
	mux.Method(http.MethodDelete, "/{id}", Handler(api.DeleteComment))

	return mux
}

func (api *API) CreateComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateCommentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.Content) || req.ReportID == uuid.Nil || req.AuthorID == uuid.Nil {
		return respondWithError(nil, "Content, reportId, and authorId are required", values.BadRequestBody, &tc)
	}

	comment, status, message, err := api.CreateCommentHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) GetCommentsByReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	limit, skip := util.ParsePagination(r.URL.Query(), 20, 0)

	comments, status, message, err := api.GetCommentsByReportHelper(r.Context(), reportID, limit, skip)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comments,
	}
}

func (api *API) GetCommentByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid comment ID", values.BadRequestBody, &tc)
	}

	comment, status, message, err := api.GetCommentByIDHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) UpdateComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid comment ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateCommentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.Content) {
		return respondWithError(nil, "Content is required", values.BadRequestBody, &tc)
	}

	comment, status, message, err := api.UpdateCommentHelper(r.Context(), id, req.Content)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) DeleteComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid comment ID", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteCommentHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
