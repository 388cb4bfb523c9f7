package rest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

// CreateReportRepo inserts a new report
func (api *API) CreateReportRepo(ctx context.Context, req model.CreateReportRequest) (model.Report, error) {
	query := `
        INSERT INTO reports (
            title, description, category, county, location,
            is_anonymous, author_name, author_id, evidence, status, priority
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9,
            'pending', -- default status for new reports
            $10 -- default priority
        ) RETURNING id, status, priority, created_at, updated_at
    `
	var location *string
	if util.NotBlank(req.Location) {
		location = &req.Location
	}
	evidence := req.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	report := model.Report{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		County:      req.County,
		Location:    location,
		IsAnonymous: req.IsAnonymous,
		AuthorName:  req.DisplayName(),
		AuthorID:    req.AuthorID,
		Evidence:    evidence,
	}
	err := api.DB.QueryRow(ctx, query,
		req.Title, req.Description, req.Category, req.County, location,
		req.IsAnonymous, report.AuthorName, req.AuthorID, evidence,
		model.DefaultReportPriority,
	).Scan(&report.ID, &report.Status, &report.Priority, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		log.Println(err)
		return model.Report{}, err
	}

	author, err := api.reportAuthorRepo(ctx, report.AuthorID)
	if err != nil {
		return model.Report{}, err
	}
	report.Author = author

	return report, nil
}

// reportAuthorRepo fetches the author projection embedded in report
// responses. A nil author id (anonymous/guest report) yields nil.
func (api *API) reportAuthorRepo(ctx context.Context, authorID *uuid.UUID) (*model.UserSummary, error) {
	if authorID == nil {
		return nil, nil
	}

	var author model.UserSummary
	err := api.DB.QueryRow(ctx, `SELECT id, name, email, role FROM users WHERE id = $1`, *authorID).Scan(
		&author.ID, &author.Name, &author.Email, &author.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAllReportsRepo retrieves reports newest-first with optional filters,
// plus the total matching count for the pagination envelope.
func (api *API) GetAllReportsRepo(ctx context.Context, filter model.ReportFilter) ([]model.Report, int64, error) {
	baseQuery := `
        SELECT
            r.id, r.title, r.description, r.category, r.county, r.location,
            r.is_anonymous, r.author_name, r.author_id, r.evidence, r.status,
            r.priority, r.date, r.figma_link, r.figma_fields, r.created_at, r.updated_at,
            (SELECT COUNT(*) FROM comments c WHERE c.report_id = r.id) AS comments_count,
            (SELECT COUNT(*) FROM report_upvotes v WHERE v.report_id = r.id) AS upvotes_count
        FROM reports r
        WHERE 1=1
    `

	// Build where clause and args dynamically
	args := []interface{}{}
	argCount := 0
	whereClause := ""

	if filter.Status != "" {
		argCount++
		whereClause += fmt.Sprintf(" AND r.status = $%d", argCount)
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		argCount++
		whereClause += fmt.Sprintf(" AND r.category = $%d", argCount)
		args = append(args, filter.Category)
	}
	if filter.Priority != "" {
		argCount++
		whereClause += fmt.Sprintf(" AND r.priority = $%d", argCount)
		args = append(args, filter.Priority)
	}
	if filter.AuthorID != nil {
		argCount++
		whereClause += fmt.Sprintf(" AND r.author_id = $%d", argCount)
		args = append(args, *filter.AuthorID)
	}

	query := fmt.Sprintf(`
        %s %s
        ORDER BY r.created_at DESC
        LIMIT $%d OFFSET $%d
    `, baseQuery, whereClause, argCount+1, argCount+2)

	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	args = append(args, filter.Limit, filter.Skip)

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var report model.Report
		err := rows.Scan(
			&report.ID, &report.Title, &report.Description, &report.Category,
			&report.County, &report.Location, &report.IsAnonymous, &report.AuthorName,
			&report.AuthorID, &report.Evidence, &report.Status, &report.Priority,
			&report.Date, &report.FigmaLink, &report.FigmaFields,
			&report.CreatedAt, &report.UpdatedAt,
			&report.CommentsCount, &report.UpvotesCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reports r WHERE 1=1 %s`, whereClause)
	var total int64
	if err := api.DB.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting reports: %w", err)
	}

	return reports, total, nil
}

// GetReportByIDRepo retrieves a report with its author, comments
// (newest-first, each with an author summary) and tags.
func (api *API) GetReportByIDRepo(ctx context.Context, id uuid.UUID) (model.ReportDetail, error) {
	query := `
        SELECT
            r.id, r.title, r.description, r.category, r.county, r.location,
            r.is_anonymous, r.author_name, r.author_id, r.evidence, r.status,
            r.priority, r.date, r.figma_link, r.figma_fields, r.created_at, r.updated_at,
            (SELECT COUNT(*) FROM report_upvotes v WHERE v.report_id = r.id) AS upvotes_count,
            u.name, u.email, u.role
        FROM reports r
        LEFT JOIN users u ON u.id = r.author_id
        WHERE r.id = $1
    `
	var detail model.ReportDetail
	var authorName, authorEmail, authorRole *string

	err := api.DB.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.Title, &detail.Description, &detail.Category,
		&detail.County, &detail.Location, &detail.IsAnonymous, &detail.AuthorName,
		&detail.AuthorID, &detail.Evidence, &detail.Status, &detail.Priority,
		&detail.Date, &detail.FigmaLink, &detail.FigmaFields,
		&detail.CreatedAt, &detail.UpdatedAt, &detail.UpvotesCount,
		&authorName, &authorEmail, &authorRole,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ReportDetail{}, ErrReportNotFound
	}
	if err != nil {
		return model.ReportDetail{}, err
	}

	if detail.AuthorID != nil && authorName != nil {
		detail.Author = &model.UserSummary{
			ID:    *detail.AuthorID,
			Name:  *authorName,
			Email: *authorEmail,
			Role:  *authorRole,
		}
	}

	comments, err := api.reportCommentsRepo(ctx, id)
	if err != nil {
		return model.ReportDetail{}, err
	}
	detail.Comments = comments
	detail.CommentsCount = len(comments)

	tags, err := api.reportTagsRepo(ctx, id)
	if err != nil {
		return model.ReportDetail{}, err
	}
	detail.Tags = tags

	return detail, nil
}

func (api *API) reportCommentsRepo(ctx context.Context, reportID uuid.UUID) ([]model.Comment, error) {
	query := `
        SELECT
            c.id, c.content, c.report_id, c.author_id, c.created_at, c.updated_at,
            u.id, u.name, u.email
        FROM comments c
        JOIN users u ON u.id = c.author_id
        WHERE c.report_id = $1
        ORDER BY c.created_at DESC
    `
	rows, err := api.DB.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var comment model.Comment
		var author model.UserSummary
		err := rows.Scan(
			&comment.ID, &comment.Content, &comment.ReportID, &comment.AuthorID,
			&comment.CreatedAt, &comment.UpdatedAt,
			&author.ID, &author.Name, &author.Email,
		)
		if err != nil {
			return nil, err
		}
		comment.Author = &author
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (api *API) reportTagsRepo(ctx context.Context, reportID uuid.UUID) ([]model.Tag, error) {
	query := `
        SELECT t.id, t.name
        FROM tags t
        JOIN report_tags rt ON rt.tag_id = t.id
        WHERE rt.report_id = $1
        ORDER BY t.name
    `
	rows, err := api.DB.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// UpdateReportRepo applies only the non-nil fields; a single statement
// so there is no window between an existence check and the write.
func (api *API) UpdateReportRepo(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest, date *time.Time) (model.Report, error) {
	query := `
        UPDATE reports
        SET
            title = COALESCE($2, title),
            description = COALESCE($3, description),
            category = COALESCE($4, category),
            priority = COALESCE($5, priority),
            location = COALESCE($6, location),
            date = COALESCE($7, date),
            figma_link = COALESCE($8, figma_link),
            figma_fields = COALESCE($9, figma_fields),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, description, category, county, location, is_anonymous,
            author_name, author_id, evidence, status, priority, date, figma_link,
            figma_fields, created_at, updated_at
    `
	var report model.Report
	err := api.DB.QueryRow(ctx, query,
		id, req.Title, req.Description, req.Category, req.Priority,
		req.Location, date, req.FigmaLink, req.FigmaFields,
	).Scan(
		&report.ID, &report.Title, &report.Description, &report.Category,
		&report.County, &report.Location, &report.IsAnonymous, &report.AuthorName,
		&report.AuthorID, &report.Evidence, &report.Status, &report.Priority,
		&report.Date, &report.FigmaLink, &report.FigmaFields,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, ErrReportNotFound
	}
	if err != nil {
		return model.Report{}, err
	}

	author, err := api.reportAuthorRepo(ctx, report.AuthorID)
	if err != nil {
		return model.Report{}, err
	}
	report.Author = author

	return report, nil
}

// DeleteReportRepo removes a report; comments and upvotes cascade at the
// database layer.
func (api *API) DeleteReportRepo(ctx context.Context, id uuid.UUID) error {
	result, err := api.DB.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (api *API) UpdateReportStatusRepo(ctx context.Context, id uuid.UUID, status string) (model.Report, error) {
	query := `
        UPDATE reports
        SET status = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, description, category, county, location, is_anonymous,
            author_name, author_id, evidence, status, priority, date, figma_link,
            figma_fields, created_at, updated_at
    `
	var report model.Report
	err := api.DB.QueryRow(ctx, query, id, status).Scan(
		&report.ID, &report.Title, &report.Description, &report.Category,
		&report.County, &report.Location, &report.IsAnonymous, &report.AuthorName,
		&report.AuthorID, &report.Evidence, &report.Status, &report.Priority,
		&report.Date, &report.FigmaLink, &report.FigmaFields,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Report{}, ErrReportNotFound
	}
	if err != nil {
		return model.Report{}, err
	}

	author, err := api.reportAuthorRepo(ctx, report.AuthorID)
	if err != nil {
		return model.Report{}, err
	}
	report.Author = author

	return report, nil
}

// AddUpvoteRepo records an upvote row inside a transaction so the report
// cannot disappear between the existence check and the insert.
func (api *API) AddUpvoteRepo(ctx context.Context, reportID uuid.UUID, userID *uuid.UUID) (model.Upvote, string, int64, error) {
	var upvote model.Upvote
	var county string
	var total int64

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT county FROM reports WHERE id = $1`, reportID).Scan(&county); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrReportNotFound
			}
			return err
		}

		upvote.ReportID = reportID
		upvote.UserID = userID
		insert := `INSERT INTO report_upvotes (report_id, user_id) VALUES ($1, $2) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insert, reportID, userID).Scan(&upvote.ID, &upvote.CreatedAt); err != nil {
			return err
		}

		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM report_upvotes WHERE report_id = $1`, reportID).Scan(&total)
	})
	if err != nil {
		return model.Upvote{}, "", 0, err
	}

	return upvote, county, total, nil
}

func (api *API) GetUpvotesRepo(ctx context.Context, reportID uuid.UUID) (model.UpvoteSummary, error) {
	exists, err := api.ReportExistsRepo(ctx, reportID)
	if err != nil {
		return model.UpvoteSummary{}, err
	}
	if !exists {
		return model.UpvoteSummary{}, ErrReportNotFound
	}

	var summary model.UpvoteSummary
	if err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM report_upvotes WHERE report_id = $1`, reportID).Scan(&summary.Total); err != nil {
		return model.UpvoteSummary{}, err
	}

	query := `
        SELECT id, report_id, user_id, created_at
        FROM report_upvotes
        WHERE report_id = $1
        ORDER BY created_at DESC
        LIMIT 10
    `
	rows, err := api.DB.Query(ctx, query, reportID)
	if err != nil {
		return model.UpvoteSummary{}, err
	}
	defer rows.Close()

	summary.Recent = []model.Upvote{}
	for rows.Next() {
		var upvote model.Upvote
		if err := rows.Scan(&upvote.ID, &upvote.ReportID, &upvote.UserID, &upvote.CreatedAt); err != nil {
			return model.UpvoteSummary{}, err
		}
		summary.Recent = append(summary.Recent, upvote)
	}
	return summary, rows.Err()
}

func (api *API) ReportExistsRepo(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := api.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reports WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (api *API) AppendEvidenceRepo(ctx context.Context, id uuid.UUID, url string) ([]string, error) {
	query := `
        UPDATE reports
        SET evidence = array_append(evidence, $2), updated_at = NOW()
        WHERE id = $1
        RETURNING evidence
    `
	var evidence []string
	err := api.DB.QueryRow(ctx, query, id, url).Scan(&evidence)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return evidence, nil
}
