package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSentRequestsQueryHandler serves a receiver's outgoing requests,
// newest first, with the donation summary each row refers to.
type GetSentRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetSentRequestsQueryHandler creates a handler for outgoing request
// listings.
func NewGetSentRequestsQueryHandler(db *gorm.DB) GetSentRequestsQueryHandler {
	return GetSentRequestsQueryHandler{db: db}
}

// Handle executes the outgoing requests query.
func (h GetSentRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetSentRequestsQuery,
) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.receiver_id = ?
		ORDER BY r.created_at DESC
	`, query.ReceiverID().Bytes()).Rows()
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
