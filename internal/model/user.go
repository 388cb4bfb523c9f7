package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // admin, reviewer, viewer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the author projection embedded in reports and comments.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role,omitempty"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role" validate:"omitempty,userrole"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,userrole"`
}

type LoginRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	IsAnonymousGuest bool   `json:"is_anonymous_guest"`
}

// GuestSession is the pseudo-session the anonymous login branch hands out.
// No row is persisted for it.
type GuestSession struct {
	Role        string `json:"role"`
	IsAnonymous bool   `json:"is_anonymous"`
}

type LoginResponse struct {
	User      GuestSession `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt time.Time    `json:"expires_at,omitempty"`
}

// UserWithCounts is a list row: the user plus dependent-row counts.
type UserWithCounts struct {
	User
	ReportsCount  int `json:"reports_count"`
	CommentsCount int `json:"comments_count"`
}

// UserDetail is the single-user projection with recent activity.
type UserDetail struct {
	User
	Reports       []ReportSummary  `json:"reports"`
	Comments      []CommentSummary `json:"comments"`
	ReportsCount  int              `json:"reports_count"`
	CommentsCount int              `json:"comments_count"`
}

type UserFilter struct {
	Role  string
	Limit int
	Skip  int
}

type PaginatedUsers struct {
	Data       []UserWithCounts `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
