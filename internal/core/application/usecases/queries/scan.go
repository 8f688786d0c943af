package queries

import (
	"database/sql"

	"github.com/google/uuid"

	"cargo/internal/core/domain/model/kernel"
)

func scanBookingSummaries(rows *sql.Rows) ([]BookingSummaryResponse, error) {
	summaries := make([]BookingSummaryResponse, 0)

	for rows.Next() {
		var summary BookingSummaryResponse
		var id uuid.UUID

		err := rows.Scan(
			&id,
			&summary.TrackingID,
			&summary.SenderName,
			&summary.RecipientName,
			&summary.RecipientAddress,
			&summary.Status,
			&summary.TotalCharge,
			&summary.BookedAt,
			&summary.ExpectedDelivery,
		)
		if err != nil {
			return nil, err
		}

		bookingID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.BookingID = bookingID
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
