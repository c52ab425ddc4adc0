package service

import (
	"testing"

	"gazelle/internal/models"

	"github.com/stretchr/testify/require"
)

func TestValidateSupplyDataEmptyPayload(t *testing.T) {
	extracted, missing := ValidateSupplyData(map[string]any{})
	require.Nil(t, extracted)
	require.ElementsMatch(t, []string{"category", "name", "quantity", "unit", "condition"}, missing)
}

func TestValidateSupplyDataCoercesStringQuantity(t *testing.T) {
	extracted, missing := ValidateSupplyData(map[string]any{
		"category":  "Water",
		"name":      "Bottled",
		"quantity":  "12",
		"unit":      "cases",
		"condition": "sealed",
	})
	require.Nil(t, missing)
	require.NotNil(t, extracted)
	require.Equal(t, 12.0, extracted.Quantity)
	require.Equal(t, "Water", extracted.Category)
	require.False(t, extracted.HasTransportation)
	require.Empty(t, extracted.Notes)
}

func TestValidateSupplyDataOptionalFields(t *testing.T) {
	extracted, _ := ValidateSupplyData(map[string]any{
		"category":          "Medical Supplies",
		"name":              "First Aid Kit",
		"quantity":          float64(3),
		"unit":              "kits",
		"condition":         "sealed",
		"location":          "77002",
		"hasTransportation": true,
		"canDeliver":        true,
		"notes":             "weekend pickup only",
		"expirationDate":    "2027-05-01",
	})
	require.NotNil(t, extracted)
	require.Equal(t, "77002", extracted.Location)
	require.True(t, extracted.HasTransportation)
	require.True(t, extracted.CanDeliver)
	require.Equal(t, "weekend pickup only", extracted.Notes)
	require.Equal(t, "2027-05-01", extracted.ExpirationDate)
}

func TestValidateSupplyDataRejectsBadQuantity(t *testing.T) {
	for _, quantity := range []any{"a dozen", float64(0), float64(-5), nil, true} {
		extracted, missing := ValidateSupplyData(map[string]any{
			"category":  "Water",
			"name":      "Bottled",
			"quantity":  quantity,
			"unit":      "cases",
			"condition": "sealed",
		})
		require.Nil(t, extracted, "quantity %v should be rejected", quantity)
		require.Contains(t, missing, "quantity")
	}
}

func TestSupplyDescription(t *testing.T) {
	desc := SupplyDescription(&models.ExtractedSupply{
		Quantity:  5,
		Unit:      "cases",
		Name:      "Bottled Water 16.9oz",
		Condition: "sealed",
	})
	require.Equal(t, "5 cases of Bottled Water 16.9oz (sealed)", desc)
}

func TestSupplyDescriptionWithExpiration(t *testing.T) {
	desc := SupplyDescription(&models.ExtractedSupply{
		Quantity:       2.5,
		Unit:           "pounds",
		Name:           "Rice",
		Condition:      "unopened",
		ExpirationDate: "2026-12-31",
	})
	require.Equal(t, "2.5 pounds of Rice (unopened) - Expires: 2026-12-31", desc)
}
