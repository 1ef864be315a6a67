package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyDonationsQueryHandler serves a donor's dashboard: all of their
// listings, newest first.
type GetMyDonationsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDonationsQueryHandler creates a handler for donor dashboards.
func NewGetMyDonationsQueryHandler(db *gorm.DB) GetMyDonationsQueryHandler {
	return GetMyDonationsQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetMyDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetMyDonationsQuery,
) ([]DonationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+donationColumns+`
		FROM donations
		WHERE donor_id = ?
		ORDER BY created_at DESC
	`, query.DonorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := make([]DonationView, 0)

	for rows.Next() {
		view, scanErr := scanDonation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		donations = append(donations, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
