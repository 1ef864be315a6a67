package donation

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// FoodType is the closed set of food categories a donation can be listed
// under. Values persist as their display strings.
type FoodType string

const (
	CookedMeal  FoodType = "Cooked Meal"
	Vegetables  FoodType = "Vegetables"
	Fruits      FoodType = "Fruits"
	CannedGoods FoodType = "Canned Goods"
	BakedGoods  FoodType = "Baked Goods"
	Dairy       FoodType = "Dairy"
	Beverages   FoodType = "Beverages"
	Grains      FoodType = "Grains"
	OtherFood   FoodType = "Other"
)

func getValidFoodTypes() map[FoodType]struct{} {
	return map[FoodType]struct{}{
		CookedMeal:  {},
		Vegetables:  {},
		Fruits:      {},
		CannedGoods: {},
		BakedGoods:  {},
		Dairy:       {},
		Beverages:   {},
		Grains:      {},
		OtherFood:   {},
	}
}

// FoodTypeFromString parses a food type supplied by the API layer.
func FoodTypeFromString(s string) (FoodType, error) {
	ft := FoodType(s)
	if err := ft.Validate(); err != nil {
		return "", err
	}
	return ft, nil
}

// Validate checks membership in the closed food type set.
func (ft FoodType) Validate() error {
	if _, ok := getValidFoodTypes()[ft]; !ok {
		return errs.NewValidationErrorWithCause("foodType",
			fmt.Errorf("%q is not a valid food type", string(ft)))
	}
	return nil
}

// String returns the display representation.
func (ft FoodType) String() string {
	return string(ft)
}
