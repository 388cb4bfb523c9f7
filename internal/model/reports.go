package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// AnonymousAuthorName replaces whatever name was supplied when a
	// report is filed anonymously.
	AnonymousAuthorName = "Anonymous Report"
	// GuestAuthorName is used when a non-anonymous report arrives
	// without a name.
	GuestAuthorName = "Guest User"

	DefaultReportPriority = "medium"
)

type Report struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	County        string       `json:"county"`
	Location      *string      `json:"location,omitempty"`
	IsAnonymous   bool         `json:"is_anonymous"`
	AuthorName    string       `json:"author_name"`
	AuthorID      *uuid.UUID   `json:"author_id,omitempty"`
	Evidence      []string     `json:"evidence"`
	Status        string       `json:"status"` // pending, reviewing, resolved, closed
	Priority      string       `json:"priority"`
	Date          *time.Time   `json:"date,omitempty"`
	FigmaLink     *string      `json:"figma_link,omitempty"`
	FigmaFields   *string      `json:"figma_fields,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Author        *UserSummary `json:"author,omitempty"`
	CommentsCount int          `json:"comments_count"`
	UpvotesCount  int          `json:"upvotes_count"`
}

// ReportSummary is the trimmed projection embedded in comments and in a
// user's recent activity.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ReportDetail is the full single-report projection with relations.
type ReportDetail struct {
	Report
	Comments []Comment `json:"comments"`
	Tags     []Tag     `json:"tags"`
}

type CreateReportRequest struct {
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	County      string     `json:"county"`
	Location    string     `json:"location"`
	IsAnonymous bool       `json:"is_anonymous"`
	AuthorID    *uuid.UUID `json:"author_id"`
	AuthorName  string     `json:"author_name"`
	Evidence    []string   `json:"evidence"`
}

// DisplayName derives the stored author name: anonymous reports always
// read "Anonymous Report" regardless of the supplied name.
func (r CreateReportRequest) DisplayName() string {
	if r.IsAnonymous {
		return AnonymousAuthorName
	}
	if r.AuthorName == "" {
		return GuestAuthorName
	}
	return r.AuthorName
}

// UpdateReportRequest carries only the fields present in the request;
// nil fields are left untouched.
type UpdateReportRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	FigmaLink   *string `json:"figma_link"`
	FigmaFields *string `json:"figma_fields"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,reportstatus"`
}

type ReportFilter struct {
	Status   string
	Category string
	Priority string
	AuthorID *uuid.UUID
	Limit    int
	Skip     int
}

type PaginatedReports struct {
	Data       []Report   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Upvote struct {
	ID        uuid.UUID  `json:"id"`
	ReportID  uuid.UUID  `json:"report_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type UpvoteRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

type UpvoteSummary struct {
	Total  int64    `json:"total"`
	Recent []Upvote `json:"recent"`
}

type AddEvidenceRequest struct {
	File string `json:"file"` // URL or base64 data URI
}
