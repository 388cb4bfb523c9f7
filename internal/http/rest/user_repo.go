package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mkamau2/jiseti/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// CreateUserRepo checks email uniqueness and inserts inside one
// transaction, so a concurrent registration cannot slip between the two.
func (api *API) CreateUserRepo(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user := model.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, req.Email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrDuplicateEmail
		}

		insert := `
            INSERT INTO users (email, name, role)
            VALUES ($1, $2, $3)
            RETURNING id, created_at, updated_at
        `
		return tx.QueryRow(ctx, insert, req.Email, req.Name, req.Role).Scan(
			&user.ID, &user.CreatedAt, &user.UpdatedAt,
		)
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (api *API) GetAllUsersRepo(ctx context.Context, filter model.UserFilter) ([]model.UserWithCounts, int64, error) {
	baseQuery := `
        SELECT
            u.id, u.email, u.name, u.role, u.created_at, u.updated_at,
            (SELECT COUNT(*) FROM reports r WHERE r.author_id = u.id) AS reports_count,
            (SELECT COUNT(*) FROM comments c WHERE c.author_id = u.id) AS comments_count
        FROM users u
        WHERE 1=1
    `

	args := []interface{}{}
	argCount := 0
	whereClause := ""

	if filter.Role != "" {
		argCount++
		whereClause += fmt.Sprintf(" AND u.role = $%d", argCount)
		args = append(args, filter.Role)
	}

	query := fmt.Sprintf(`
        %s %s
        ORDER BY u.created_at DESC
        LIMIT $%d OFFSET $%d
    `, baseQuery, whereClause, argCount+1, argCount+2)

	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	args = append(args, filter.Limit, filter.Skip)

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []model.UserWithCounts
	for rows.Next() {
		var user model.UserWithCounts
		err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.Role,
			&user.CreatedAt, &user.UpdatedAt,
			&user.ReportsCount, &user.CommentsCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users u WHERE 1=1 %s`, whereClause)
	var total int64
	if err := api.DB.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	return users, total, nil
}

// GetUserByIDRepo returns the user with their five most recent reports
// and comments plus total counts.
func (api *API) GetUserByIDRepo(ctx context.Context, id uuid.UUID) (model.UserDetail, error) {
	var detail model.UserDetail

	query := `
        SELECT
            u.id, u.email, u.name, u.role, u.created_at, u.updated_at,
            (SELECT COUNT(*) FROM reports r WHERE r.author_id = u.id) AS reports_count,
            (SELECT COUNT(*) FROM comments c WHERE c.author_id = u.id) AS comments_count
        FROM users u
        WHERE u.id = $1
    `
	err := api.DB.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.Email, &detail.Name, &detail.Role,
		&detail.CreatedAt, &detail.UpdatedAt,
		&detail.ReportsCount, &detail.CommentsCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.UserDetail{}, ErrUserNotFound
	}
	if err != nil {
		return model.UserDetail{}, err
	}

	reports, err := api.recentReportsRepo(ctx, id)
	if err != nil {
		return model.UserDetail{}, err
	}
	detail.Reports = reports

	comments, err := api.recentCommentsRepo(ctx, id)
	if err != nil {
		return model.UserDetail{}, err
	}
	detail.Comments = comments

	return detail, nil
}

func (api *API) recentReportsRepo(ctx context.Context, authorID uuid.UUID) ([]model.ReportSummary, error) {
	query := `
        SELECT id, title, status, created_at
        FROM reports
        WHERE author_id = $1
        ORDER BY created_at DESC
        LIMIT 5
    `
	rows, err := api.DB.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []model.ReportSummary{}
	for rows.Next() {
		var report model.ReportSummary
		if err := rows.Scan(&report.ID, &report.Title, &report.Status, &report.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (api *API) recentCommentsRepo(ctx context.Context, authorID uuid.UUID) ([]model.CommentSummary, error) {
	query := `
        SELECT id, content, created_at
        FROM comments
        WHERE author_id = $1
        ORDER BY created_at DESC
        LIMIT 5
    `
	rows, err := api.DB.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.CommentSummary{}
	for rows.Next() {
		var comment model.CommentSummary
		if err := rows.Scan(&comment.ID, &comment.Content, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// UpdateUserRepo applies a partial update; when the email changes it
// verifies uniqueness in the same transaction before writing.
func (api *API) UpdateUserRepo(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (model.User, error) {
	var user model.User

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var currentEmail string
		err := tx.QueryRow(ctx, `SELECT email FROM users WHERE id = $1`, id).Scan(&currentEmail)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if req.Email != nil && *req.Email != currentEmail {
			var taken bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, *req.Email, id).Scan(&taken); err != nil {
				return err
			}
			if taken {
				return ErrDuplicateEmail
			}
		}

		update := `
            UPDATE users
            SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = NOW()
            WHERE id = $1
            RETURNING id, email, name, role, created_at, updated_at
        `
		return tx.QueryRow(ctx, update, id, req.Name, req.Email).Scan(
			&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
		)
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// DeleteUserRepo removes a user; their reports and comments cascade at
// the database layer.
func (api *API) DeleteUserRepo(ctx context.Context, id uuid.UUID) error {
	result, err := api.DB.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (api *API) UpdateUserRoleRepo(ctx context.Context, id uuid.UUID, role string) (model.User, error) {
	query := `
        UPDATE users
        SET role = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING id, email, name, role, created_at, updated_at
    `
	var user model.User
	err := api.DB.QueryRow(ctx, query, id, role).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}
