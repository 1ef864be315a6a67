package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableDonationsQueryHandler serves the public donation feed
// straight from the database, newest listings first.
type GetAvailableDonationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDonationsQueryHandler creates a handler for the
// donation feed.
func NewGetAvailableDonationsQueryHandler(db *gorm.DB) GetAvailableDonationsQueryHandler {
	return GetAvailableDonationsQueryHandler{db: db}
}

// Handle executes the feed query with the requested filters.
func (h GetAvailableDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDonationsQuery,
) ([]DonationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE status = ?`
	args := []any{int(query.Status())}

	if query.FoodType() != nil {
		sql += ` AND food_type = ?`
		args = append(args, query.FoodType().String())
	}

	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
