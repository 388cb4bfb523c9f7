package rest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util/values"
)

func (api *API) CreateUserHelper(ctx context.Context, req model.CreateUserRequest) (model.User, string, string, error) {
	user, err := api.CreateUserRepo(ctx, req)
	if errors.Is(err, ErrDuplicateEmail) {
		return model.User{}, values.Conflict, "User with this email already exists", err
	}
	if err != nil {
		return model.User{}, values.Error, "Failed to create user", err
	}
	return user, values.Created, "User created successfully", nil
}

func (api *API) GuestLoginHelper() (model.LoginResponse, string, string, error) {
	token, expiresAt, err := api.createGuestToken()
	if err != nil {
		return model.LoginResponse{}, values.Error, "Failed to create guest session", err
	}

	session := model.LoginResponse{
		User: model.GuestSession{
			Role:        values.RoleViewer,
			IsAnonymous: true,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return session, values.Success, "Browsing as Guest", nil
}

// createGuestToken mints a short-lived viewer token. Guests have no row
// in the users table; the token is the whole session.
func (api *API) createGuestToken() (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "guest",
		"role": values.RoleViewer,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
		"typ":  "guest",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) GetAllUsersHelper(ctx context.Context, filter model.UserFilter) (model.PaginatedUsers, string, string, error) {
	users, total, err := api.GetAllUsersRepo(ctx, filter)
	if err != nil {
		return model.PaginatedUsers{}, values.Error, "Failed to fetch users", err
	}
	if users == nil {
		users = []model.UserWithCounts{}
	}

	paginated := model.PaginatedUsers{
		Data: users,
		Pagination: model.Pagination{
			Total: total,
			Limit: filter.Limit,
			Skip:  filter.Skip,
		},
	}
	return paginated, values.Success, "Users fetched successfully", nil
}

func (api *API) GetUserByIDHelper(ctx context.Context, id uuid.UUID) (model.UserDetail, string, string, error) {
	user, err := api.GetUserByIDRepo(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return model.UserDetail{}, values.NotFound, "User not found", err
	}
	if err != nil {
		return model.UserDetail{}, values.Error, "Failed to fetch user", err
	}
	return user, values.Success, "User fetched successfully", nil
}

func (api *API) UpdateUserHelper(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (model.User, string, string, error) {
	user, err := api.UpdateUserRepo(ctx, id, req)
	if errors.Is(err, ErrUserNotFound) {
		return model.User{}, values.NotFound, "User not found", err
	}
	if errors.Is(err, ErrDuplicateEmail) {
		return model.User{}, values.Conflict, "Email already in use", err
	}
	if err != nil {
		return model.User{}, values.Error, "Failed to update user", err
	}
	return user, values.Success, "User updated successfully", nil
}

func (api *API) DeleteUserHelper(ctx context.Context, id uuid.UUID) (string, string, error) {
	err := api.DeleteUserRepo(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return values.NotFound, "User not found", err
	}
	if err != nil {
		return values.Error, "Failed to delete user", err
	}
	return values.Success, "User deleted successfully", nil
}

func (api *API) UpdateUserRoleHelper(ctx context.Context, id uuid.UUID, role string) (model.User, string, string, error) {
	user, err := api.UpdateUserRoleRepo(ctx, id, role)
	if errors.Is(err, ErrUserNotFound) {
		return model.User{}, values.NotFound, "User not found", err
	}
	if err != nil {
		return model.User{}, values.Error, "Failed to update user role", err
	}

	message := fmt.Sprintf("User role updated to '%s'", role)
	return user, values.Success, message, nil
}
