package queries

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/services"
)

// ExportReportQueryHandler renders the administrator report projections.
// Each report kind carries a fixed column set; rows come back newest
// booking first.
type ExportReportQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewExportReportQueryHandler creates a handler for report exports.
func NewExportReportQueryHandler(db *gorm.DB, policy *services.AccessPolicy) ExportReportQueryHandler {
	return ExportReportQueryHandler{db: db, policy: policy}
}

// Handle executes the selected projection over the booking date range.
func (h ExportReportQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query ExportReportQuery,
) (ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportResponse{}, err
	}
	if err := h.policy.Authorize(principal, services.OpExportReports); err != nil {
		return ReportResponse{}, err
	}

	switch query.Kind() {
	case ReportShipment:
		return h.shipmentReport(ctx, query)
	case ReportFull:
		return h.fullReport(ctx, query)
	default:
		return h.financialReport(ctx, query)
	}
}

func (h ExportReportQueryHandler) financialReport(ctx context.Context, query ExportReportQuery) (ReportResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.tracking_id,
			a.full_name,
			b.total_charge,
			b.status,
			b.booked_at
		FROM bookings b
		JOIN accounts a ON a.id = b.customer_id
		WHERE b.booked_at >= ? AND b.booked_at < ?
		ORDER BY b.booked_at DESC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return ReportResponse{}, err
	}
	defer rows.Close()

	resp := ReportResponse{
		Kind:   ReportFinancial,
		Header: []string{"id", "tracking_id", "customer", "total_amount", "status", "booking_date"},
		Rows:   make([][]string, 0),
	}
	for rows.Next() {
		var id uuid.UUID
		var trackingID, customer, status string
		var totalCharge float64
		var bookedAt time.Time

		if err = rows.Scan(&id, &trackingID, &customer, &totalCharge, &status, &bookedAt); err != nil {
			return ReportResponse{}, err
		}
		resp.Rows = append(resp.Rows, []string{
			id.String(), trackingID, customer, formatAmount(totalCharge), status, formatDate(bookedAt),
		})
	}
	if err = rows.Err(); err != nil {
		return ReportResponse{}, err
	}
	return resp, nil
}

func (h ExportReportQueryHandler) shipmentReport(ctx context.Context, query ExportReportQuery) (ReportResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			sender_name,
			recipient_name,
			status,
			booked_at
		FROM bookings
		WHERE booked_at >= ? AND booked_at < ?
		ORDER BY booked_at DESC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return ReportResponse{}, err
	}
	defer rows.Close()

	resp := ReportResponse{
		Kind:   ReportShipment,
		Header: []string{"id", "tracking_id", "sender", "recipient", "status", "booking_date"},
		Rows:   make([][]string, 0),
	}
	for rows.Next() {
		var id uuid.UUID
		var trackingID, sender, recipient, status string
		var bookedAt time.Time

		if err = rows.Scan(&id, &trackingID, &sender, &recipient, &status, &bookedAt); err != nil {
			return ReportResponse{}, err
		}
		resp.Rows = append(resp.Rows, []string{
			id.String(), trackingID, sender, recipient, status, formatDate(bookedAt),
		})
	}
	if err = rows.Err(); err != nil {
		return ReportResponse{}, err
	}
	return resp, nil
}

func (h ExportReportQueryHandler) fullReport(ctx context.Context, query ExportReportQuery) (ReportResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.tracking_id,
			b.sender_name,
			b.recipient_name,
			b.sender_address,
			b.recipient_address,
			b.status,
			b.booked_at,
			a.full_name
		FROM bookings b
		JOIN accounts a ON a.id = b.customer_id
		WHERE b.booked_at >= ? AND b.booked_at < ?
		ORDER BY b.booked_at DESC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return ReportResponse{}, err
	}
	defer rows.Close()

	resp := ReportResponse{
		Kind: ReportFull,
		Header: []string{
			"id", "tracking_id", "sender", "recipient",
			"sender_address", "recipient_address", "status", "booking_date", "customer",
		},
		Rows: make([][]string, 0),
	}
	for rows.Next() {
		var id uuid.UUID
		var trackingID, sender, recipient, senderAddress, recipientAddress string
		var status, customer string
		var bookedAt time.Time

		err = rows.Scan(
			&id, &trackingID, &sender, &recipient,
			&senderAddress, &recipientAddress, &status, &bookedAt, &customer,
		)
		if err != nil {
			return ReportResponse{}, err
		}
		resp.Rows = append(resp.Rows, []string{
			id.String(), trackingID, sender, recipient,
			senderAddress, recipientAddress, status, formatDate(bookedAt), customer,
		})
	}
	if err = rows.Err(); err != nil {
		return ReportResponse{}, err
	}
	return resp, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
