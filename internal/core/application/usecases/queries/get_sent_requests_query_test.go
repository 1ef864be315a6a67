package queries_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSentRequestsQuery_ValidInput(t *testing.T) {
	receiverID := kernel.NewUUID()

	query, err := queries.NewGetSentRequestsQuery(receiverID)

	require.NoError(t, err)
	assert.Equal(t, receiverID, query.ReceiverID())
	require.NoError(t, query.Validate())
}

func TestNewGetSentRequestsQuery_InvalidReceiverID(t *testing.T) {
	_, err := queries.NewGetSentRequestsQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetSentRequestsQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetSentRequestsQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetSentRequestsQueryIsNotConstructed)
}
