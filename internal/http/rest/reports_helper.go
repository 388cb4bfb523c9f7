package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util/values"
	"github.com/mkamau2/jiseti/util/websockets"
)

func (api *API) CreateReportHelper(ctx context.Context, req model.CreateReportRequest) (model.Report, string, string, error) {
	report, err := api.CreateReportRepo(ctx, req)
	if err != nil {
		return model.Report{}, values.Error, "Failed to create report", err
	}

	api.publishEvent(websockets.MsgTypeReportUpdate, report.County, report)

	return report, values.Created, "Report submitted successfully", nil
}

func (api *API) GetAllReportsHelper(ctx context.Context, filter model.ReportFilter) (model.PaginatedReports, string, string, error) {
	reports, total, err := api.GetAllReportsRepo(ctx, filter)
	if err != nil {
		return model.PaginatedReports{}, values.Error, "Failed to fetch reports", err
	}
	if reports == nil {
		reports = []model.Report{}
	}

	paginated := model.PaginatedReports{
		Data: reports,
		Pagination: model.Pagination{
			Total: total,
			Limit: filter.Limit,
			Skip:  filter.Skip,
		},
	}
	return paginated, values.Success, "Reports fetched successfully", nil
}

func (api *API) GetReportByIDHelper(ctx context.Context, id uuid.UUID) (model.ReportDetail, string, string, error) {
	report, err := api.GetReportByIDRepo(ctx, id)
	if errors.Is(err, ErrReportNotFound) {
		return model.ReportDetail{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.ReportDetail{}, values.Error, "Failed to fetch report", err
	}
	return report, values.Success, "Report fetched successfully", nil
}

func (api *API) UpdateReportHelper(ctx context.Context, id uuid.UUID, req model.UpdateReportRequest, date *time.Time) (model.Report, string, string, error) {
	report, err := api.UpdateReportRepo(ctx, id, req, date)
	if errors.Is(err, ErrReportNotFound) {
		return model.Report{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.Report{}, values.Error, "Failed to update report", err
	}
	return report, values.Success, "Report updated successfully", nil
}

func (api *API) DeleteReportHelper(ctx context.Context, id uuid.UUID) (string, string, error) {
	err := api.DeleteReportRepo(ctx, id)
	if errors.Is(err, ErrReportNotFound) {
		return values.NotFound, "Report not found", err
	}
	if err != nil {
		return values.Error, "Failed to delete report", err
	}
	return values.Success, "Report deleted successfully", nil
}

func (api *API) UpdateReportStatusHelper(ctx context.Context, id uuid.UUID, status string) (model.Report, string, string, error) {
	report, err := api.UpdateReportStatusRepo(ctx, id, status)
	if errors.Is(err, ErrReportNotFound) {
		return model.Report{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.Report{}, values.Error, "Failed to update report status", err
	}

	api.publishEvent(websockets.MsgTypeReportUpdate, report.County, report)

	message := fmt.Sprintf("Report status updated to '%s'", status)
	return report, values.Success, message, nil
}

func (api *API) UpvoteReportHelper(ctx context.Context, reportID uuid.UUID, userID *uuid.UUID) (model.Upvote, string, string, error) {
	upvote, county, total, err := api.AddUpvoteRepo(ctx, reportID, userID)
	if errors.Is(err, ErrReportNotFound) {
		return model.Upvote{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.Upvote{}, values.Error, "Failed to record upvote", err
	}

	api.publishEvent(websockets.MsgTypeUpvoteUpdate, county, struct {
		ReportID uuid.UUID `json:"report_id"`
		Total    int64     `json:"total"`
	}{ReportID: reportID, Total: total})

	return upvote, values.Created, "Upvote recorded successfully", nil
}

func (api *API) GetReportUpvotesHelper(ctx context.Context, reportID uuid.UUID) (model.UpvoteSummary, string, string, error) {
	upvotes, err := api.GetUpvotesRepo(ctx, reportID)
	if errors.Is(err, ErrReportNotFound) {
		return model.UpvoteSummary{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return model.UpvoteSummary{}, values.Error, "Failed to fetch upvotes", err
	}
	return upvotes, values.Success, "Upvotes fetched successfully", nil
}

// EvidenceResponse is returned after an evidence upload: the stored URL
// plus the report's full evidence list.
type EvidenceResponse struct {
	URL      string   `json:"url"`
	Evidence []string `json:"evidence"`
}

func (api *API) AddReportEvidenceHelper(ctx context.Context, reportID uuid.UUID, file string) (EvidenceResponse, string, string, error) {
	exists, err := api.ReportExistsRepo(ctx, reportID)
	if err != nil {
		return EvidenceResponse{}, values.Error, "Failed to upload evidence", err
	}
	if !exists {
		return EvidenceResponse{}, values.NotFound, "Report not found", ErrReportNotFound
	}

	url, err := api.Deps.Cloudinary.UploadImage(ctx, file, "evidence")
	if err != nil {
		return EvidenceResponse{}, values.Error, "Failed to upload evidence", err
	}

	evidence, err := api.AppendEvidenceRepo(ctx, reportID, url)
	if errors.Is(err, ErrReportNotFound) {
		return EvidenceResponse{}, values.NotFound, "Report not found", err
	}
	if err != nil {
		return EvidenceResponse{}, values.Error, "Failed to upload evidence", err
	}

	return EvidenceResponse{URL: url, Evidence: evidence}, values.Created, "Evidence uploaded successfully", nil
}

// publishEvent pushes a live-feed event to websocket subscribers. Clients
// subscribed to a county only see that county's events.
func (api *API) publishEvent(eventType, county string, data interface{}) {
	if api.Deps == nil || api.Deps.WebSocket == nil {
		return
	}

	payload, err := json.Marshal(websockets.Event{Type: eventType, County: county, Data: data})
	if err != nil {
		log.Println("failed to marshal event payload:", err)
		return
	}
	api.Deps.WebSocket.BroadcastUpdate(payload, county)
}
