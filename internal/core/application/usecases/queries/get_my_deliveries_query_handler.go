package queries

import (
	"context"

	"foodbridge/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler serves a delivery person's worksheet:
// requests they were assigned to at approval, whether still waiting for
// pickup, on the road or already dropped off.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for delivery
// worksheets.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle executes the worksheet query.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.delivery_person_id = ?
		  AND r.status IN (?, ?, ?)
		ORDER BY r.created_at DESC
	`,
		query.DeliveryPersonID().Bytes(),
		int(request.Approved),
		int(request.InTransit),
		int(request.Completed),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]RequestView, 0)

	for rows.Next() {
		view, scanErr := scanRequest(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
