package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util"
	"github.com/mkamau2/jiseti/util/tracing"
	"github.com/mkamau2/jiseti/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateUser))
	mux.Method(http.MethodPost, "/login", Handler(api.LoginUser))
	mux.Method(http.MethodGet, "/", Handler(api.GetAllUsers))
	mux.Method(http.MethodGet, "/{id}", Handler(api.GetUserByID))
	mux.Method(http.MethodPut, "/{id}", Handler(api.UpdateUser))
	mux.Method(http.MethodDelete, "/{id}", Handler(api.DeleteUser))
	mux.Method(http.MethodPatch, "/{id}/role", Handler(api.UpdateUserRole))

	return mux
}

func (api *API) CreateUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateUserRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	req.Email = strings.TrimSpace(req.Email)

	if !util.NotBlank(req.Email) || !util.NotBlank(req.Name) {
		return respondWithError(nil, "Email and name are required", values.BadRequestBody, &tc)
	}
	if !util.IsEmail(req.Email) {
		return respondWithError(nil, "Invalid email format", values.BadRequestBody, &tc)
	}
	if req.Role == "" {
		req.Role = values.RoleViewer
	}
	if validateErr := util.ValidateStruct(req); validateErr != nil {
		message := fmt.Sprintf("Invalid role. Must be one of: %s", strings.Join(values.ValidRoles, ", "))
		return respondWithError(validateErr, message, values.BadRequestBody, &tc)
	}

	user, status, message, err := api.CreateUserHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

// LoginUser only implements the anonymous-guest branch: it hands out a
// viewer-role pseudo-session without persisting anything. Credential
// login does not exist yet.
func (api *API) LoginUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !req.IsAnonymousGuest {
		return respondWithError(nil, "Account login is not available yet. Continue as guest instead", values.NotImplemented, &tc)
	}

	session, status, message, err := api.GuestLoginHelper()
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       session,
	}
}

func (api *API) GetAllUsers(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	query := r.URL.Query()
	limit, skip := util.ParsePagination(query, 10, 0)

	filter := model.UserFilter{
		Role:  query.Get("role"),
		Limit: limit,
		Skip:  skip,
	}

	if filter.Role != "" && !values.IsValidRole(filter.Role) {
		message := fmt.Sprintf("Invalid role. Must be one of: %s", strings.Join(values.ValidRoles, ", "))
		return respondWithError(nil, message, values.BadRequestBody, &tc)
	}

	users, status, message, err := api.GetAllUsersHelper(r.Context(), filter)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       users,
	}
}

func (api *API) GetUserByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid user ID", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.GetUserByIDHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

func (api *API) UpdateUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid user ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateUserRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
		if !util.IsEmail(trimmed) {
			return respondWithError(nil, "Invalid email format", values.BadRequestBody, &tc)
		}
	}

	user, status, message, err := api.UpdateUserHelper(r.Context(), id, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

func (api *API) DeleteUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid user ID", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteUserHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) UpdateUserRole(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid user ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateUserRoleRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if validateErr := util.ValidateStruct(req); validateErr != nil {
		message := fmt.Sprintf("Invalid role. Must be one of: %s", strings.Join(values.ValidRoles, ", "))
		return respondWithError(validateErr, message, values.BadRequestBody, &tc)
	}

	user, status, message, err := api.UpdateUserRoleHelper(r.Context(), id, req.Role)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}
