package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDonationCommand_ValidInput(t *testing.T) {
	donationID := kernel.NewUUID()
	donorID := kernel.NewUUID()
	loc, err := kernel.NewLocation(52.3676, 4.9041)
	require.NoError(t, err)
	bestBefore := time.Now().Add(48 * time.Hour)

	cmd, err := commands.NewCreateDonationCommand(
		donationID,
		donorID,
		"Vegetable soup",
		"Six portions, still warm",
		donation.CookedMeal,
		"6 portions",
		"4 Canal St",
		"https://img.example/soup.jpg",
		&loc,
		&bestBefore,
		[]string{"celery"},
		[]string{"vegan"},
	)

	require.NoError(t, err)
	assert.Equal(t, donationID, cmd.DonationID())
	assert.Equal(t, donorID, cmd.DonorID())
	assert.Equal(t, "Vegetable soup", cmd.Title())
	assert.Equal(t, donation.CookedMeal, cmd.FoodType())
	assert.Equal(t, &loc, cmd.Location())
	assert.Equal(t, []string{"celery"}, cmd.Allergens())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateDonationCommand_OptionalFieldsMayBeZero(t *testing.T) {
	cmd, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Bread",
		"Day-old loaves",
		donation.BakedGoods,
		"10 loaves",
		"12 Main St",
		"",
		nil,
		nil,
		nil,
		nil,
	)

	require.NoError(t, err)
	assert.Nil(t, cmd.Location())
	assert.Nil(t, cmd.BestBefore())
	assert.Empty(t, cmd.ImageURL())
}

func TestNewCreateDonationCommand_InvalidDonorID(t *testing.T) {
	_, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(),
		kernel.UUID{},
		"Bread",
		"Day-old loaves",
		donation.BakedGoods,
		"10 loaves",
		"12 Main St",
		"",
		nil,
		nil,
		nil,
		nil,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDonationCommand_UnconstructedLocation(t *testing.T) {
	var loc kernel.Location // zero value, not constructed via NewLocation

	_, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Bread",
		"Day-old loaves",
		donation.BakedGoods,
		"10 loaves",
		"12 Main St",
		"",
		&loc,
		nil,
		nil,
		nil,
	)

	require.Error(t, err)
}

func TestCreateDonationCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateDonationCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDonationCommandIsNotConstructed)
}
