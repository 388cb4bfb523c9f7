package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mkamau2/jiseti/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// CreateCommentRepo verifies the report and author exist before
// inserting, all inside one transaction. The report's county comes back
// with the comment so callers can scope the broadcast.
func (api *API) CreateCommentRepo(ctx context.Context, req model.CreateCommentRequest) (model.Comment, string, error) {
	comment := model.Comment{
		Content:  req.Content,
		ReportID: req.ReportID,
		AuthorID: req.AuthorID,
	}
	var county string

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var reportTitle string
		err := tx.QueryRow(ctx, `SELECT title, county FROM reports WHERE id = $1`, req.ReportID).Scan(&reportTitle, &county)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReportNotFound
		}
		if err != nil {
			return err
		}

		author := model.UserSummary{ID: req.AuthorID}
		err = tx.QueryRow(ctx, `SELECT name, email FROM users WHERE id = $1`, req.AuthorID).Scan(&author.Name, &author.Email)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		insert := `
            INSERT INTO comments (content, report_id, author_id)
            VALUES ($1, $2, $3)
            RETURNING id, created_at, updated_at
        `
		err = tx.QueryRow(ctx, insert, req.Content, req.ReportID, req.AuthorID).Scan(
			&comment.ID, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return err
		}

		comment.Author = &author
		comment.Report = &model.ReportSummary{ID: req.ReportID, Title: reportTitle}
		return nil
	})
	if err != nil {
		return model.Comment{}, "", err
	}

	return comment, county, nil
}

func (api *API) GetCommentsByReportRepo(ctx context.Context, reportID uuid.UUID, limit, skip int) ([]model.Comment, int64, error) {
	var exists bool
	if err := api.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reports WHERE id = $1)`, reportID).Scan(&exists); err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrReportNotFound
	}

	query := `
        SELECT
            c.id, c.content, c.report_id, c.author_id, c.created_at, c.updated_at,
            u.name, u.email
        FROM comments c
        JOIN users u ON u.id = c.author_id
        WHERE c.report_id = $1
        ORDER BY c.created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := api.DB.Query(ctx, query, reportID, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		var author model.UserSummary
		err := rows.Scan(
			&comment.ID, &comment.Content, &comment.ReportID, &comment.AuthorID,
			&comment.CreatedAt, &comment.UpdatedAt,
			&author.Name, &author.Email,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning comment: %w", err)
		}
		author.ID = comment.AuthorID
		comment.Author = &author
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE report_id = $1`, reportID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting comments: %w", err)
	}

	return comments, total, nil
}

func (api *API) GetCommentByIDRepo(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	query := `
        SELECT
            c.id, c.content, c.report_id, c.author_id, c.created_at, c.updated_at,
            u.name, u.email,
            r.title, r.status
        FROM comments c
        JOIN users u ON u.id = c.author_id
        JOIN reports r ON r.id = c.report_id
        WHERE c.id = $1
    `
	var comment model.Comment
	var author model.UserSummary
	var report model.ReportSummary
	err := api.DB.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.Content, &comment.ReportID, &comment.AuthorID,
		&comment.CreatedAt, &comment.UpdatedAt,
		&author.Name, &author.Email,
		&report.Title, &report.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}

	author.ID = comment.AuthorID
	report.ID = comment.ReportID
	comment.Author = &author
	comment.Report = &report
	return comment, nil
}

func (api *API) UpdateCommentRepo(ctx context.Context, id uuid.UUID, content string) (model.Comment, error) {
	var comment model.Comment
	var author model.UserSummary
	var report model.ReportSummary

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		update := `
            UPDATE comments
            SET content = $2, updated_at = NOW()
            WHERE id = $1
            RETURNING id, content, report_id, author_id, created_at, updated_at
        `
		err := tx.QueryRow(ctx, update, id, content).Scan(
			&comment.ID, &comment.Content, &comment.ReportID, &comment.AuthorID,
			&comment.CreatedAt, &comment.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCommentNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, `SELECT name, email FROM users WHERE id = $1`, comment.AuthorID).Scan(&author.Name, &author.Email); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT title FROM reports WHERE id = $1`, comment.ReportID).Scan(&report.Title)
	})
	if err != nil {
		return model.Comment{}, err
	}

	author.ID = comment.AuthorID
	report.ID = comment.ReportID
	comment.Author = &author
	comment.Report = &report
	return comment, nil
}

func (api *API) DeleteCommentRepo(ctx context.Context, id uuid.UUID) error {
	result, err := api.DB.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}
