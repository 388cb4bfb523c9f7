package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util/values"
	"github.com/mkamau2/jiseti/util/websockets"
)

func (api *API) CreateCommentHelper(ctx context.Context, req model.CreateCommentRequest) (model.Comment, string, string, error) {
	comment, county, err := api.CreateCommentRepo(ctx, req)
	if errors.Is(err, ErrReportNotFound) {
		return model.Comment{}, values.NotFound, "Report not found", err
	}
	if errors.Is(err, ErrUserNotFound) {
		return model.Comment{}, values.NotFound, "User not found", err
	}
	if err != nil {
		return model.Comment{}, values.Error, "Failed to create comment", err
	}

	api.publishEvent(websockets.MsgTypeCommentUpdate, county, comment)

	return comment, values.Created, "Comment created successfully", nil
}

func (api *API) GetCommentsByReportHelper(ctx context.Context, reportID uuid.UUID, limit, skip int) (model.PaginatedComments, string, string, error) {
	comments, total, err := api.GetCommentsByReportRepo(ctx, reportID, limit, skip)
	if errors.Is(err, ErrReportNotFound) {
		return model.PaginatedComments{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.PaginatedComments{}, values.Error, "Failed to fetch comments", err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	paginated := model.PaginatedComments{
		Data: comments,
		Pagination: model.Pagination{
			Total: total,
			Limit: limit,
			Skip:  skip,
		},
	}
	return paginated, values.Success, "Comments fetched successfully", nil
}

func (api *API) GetCommentByIDHelper(ctx context.Context, id uuid.UUID) (model.Comment, string, string, error) {
	comment, err := api.GetCommentByIDRepo(ctx, id)
	if errors.Is(err, ErrCommentNotFound) {
		return model.Comment{}, values.NotFound, "Comment not found", err
	}
	if err != nil {
		return model.Comment{}, values.Error, "Failed to fetch comment", err
	}
	return comment, values.Success, "Comment fetched successfully", nil
}

func (api *API) UpdateCommentHelper(ctx context.Context, id uuid.UUID, content string) (model.Comment, string, string, error) {
	comment, err := api.UpdateCommentRepo(ctx, id, content)
	if errors.Is(err, ErrCommentNotFound) {
		return model.Comment{}, values.NotFound, "Comment not found", err
	}
	if err != nil {
		return model.Comment{}, values.Error, "Failed to update comment", err
	}
	return comment, values.Success, "Comment updated successfully", nil
}

func (api *API) DeleteCommentHelper(ctx context.Context, id uuid.UUID) (string, string, error) {
	err := api.DeleteCommentRepo(ctx, id)
	if errors.Is(err, ErrCommentNotFound) {
		return values.NotFound, "Comment not found", err
	}
	if err != nil {
		return values.Error, "Failed to delete comment", err
	}
	return values.Success, "Comment deleted successfully", nil
}
