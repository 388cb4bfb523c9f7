package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	ReportID  uuid.UUID      `json:"report_id"`
	AuthorID  uuid.UUID      `json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Author    *UserSummary   `json:"author,omitempty"`
	Report    *ReportSummary `json:"report,omitempty"`
}

// CommentSummary is the projection embedded in a user's recent activity.
type CommentSummary struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Content  string    `json:"content"`
	ReportID uuid.UUID `json:"report_id"`
	AuthorID uuid.UUID `json:"author_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type PaginatedComments struct {
	Data       []Comment  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
