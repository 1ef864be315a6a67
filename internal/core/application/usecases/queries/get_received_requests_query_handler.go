package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReceivedRequestsQueryHandler serves a donor's inbox: every request
// against any of their listings, newest first. The request rows carry a
// denormalized donor_id, so no subquery over donations is needed.
type GetReceivedRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetReceivedRequestsQueryHandler creates a handler for incoming
// request listings.
func NewGetReceivedRequestsQueryHandler(db *gorm.DB) GetReceivedRequestsQueryHandler {
	return GetReceivedRequestsQueryHandler{db: db}
}

// Handle executes the inbox query.
func (h GetReceivedRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetReceivedRequestsQuery,
) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.donor_id = ?
		ORDER BY r.created_at DESC
	`, query.DonorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]RequestView, 0)

	for rows.Next() {
		view, scanErr := scanRequest(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		requests = append(requests, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
