package service

import (
	"fmt"
	"strconv"
	"strings"

	"gazelle/internal/knowledge"
	"gazelle/internal/models"
)

const RecordDonationToolName = "record_supply_donation"

// SupplyExtractionTool builds the tool definition offered to the model on
// provider turns.
func SupplyExtractionTool() *ClaudeTool {
	return &ClaudeTool{
		Name: RecordDonationToolName,
		Description: "Records a supply donation after collecting all necessary information from the provider. " +
			"Use this tool when you have gathered: what supplies they have, quantity, condition, and their location. " +
			"This creates a record in the database for matching with people in need.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type":        "string",
					"enum":        knowledge.CategoryNames(),
					"description": "The category of supplies being donated",
				},
				"name": map[string]any{
					"type":        "string",
					"description": `Specific description of the supply (e.g., "Bottled Water 16.9oz", "Canned Soup", "First Aid Kit")`,
				},
				"quantity": map[string]any{
					"type":        "number",
					"description": "Numeric quantity of the supply",
				},
				"unit": map[string]any{
					"type":        "string",
					"description": "Unit of measurement (bottles, cases, boxes, pounds, items, etc.)",
				},
				"condition": map[string]any{
					"type":        "string",
					"description": "Condition of the items (sealed, unopened, new, clean, good condition, etc.)",
				},
				"location": map[string]any{
					"type":        "string",
					"description": "General location or area where supplies are located (city, neighborhood, zip code)",
				},
				"hasTransportation": map[string]any{
					"type":        "boolean",
					"description": "Whether the provider has transportation available",
				},
				"canDeliver": map[string]any{
					"type":        "boolean",
					"description": "Whether the provider can deliver the supplies to a distribution center",
				},
				"notes": map[string]any{
					"type":        "string",
					"description": "Any additional notes or special instructions about the donation",
				},
				"expirationDate": map[string]any{
					"type":        "string",
					"description": "Expiration date if applicable (ISO format YYYY-MM-DD)",
				},
			},
			"required": []string{"category", "name", "quantity", "unit", "condition"},
		},
	}
}

// ValidateSupplyData normalizes a record_supply_donation payload into an
// ExtractedSupply. A nil record means the payload is unusable and nothing
// should be persisted; the returned slice names the fields that failed, for
// diagnostics only.
func ValidateSupplyData(data map[string]any) (*models.ExtractedSupply, []string) {
	var missing []string

	category := stringField(data, "category")
	if category == "" {
		missing = append(missing, "category")
	}
	name := stringField(data, "name")
	if name == "" {
		missing = append(missing, "name")
	}
	unit := stringField(data, "unit")
	if unit == "" {
		missing = append(missing, "unit")
	}
	condition := stringField(data, "condition")
	if condition == "" {
		missing = append(missing, "condition")
	}

	quantity, ok := numberField(data, "quantity")
	if !ok || quantity <= 0 {
		missing = append(missing, "quantity")
	}

	if len(missing) > 0 {
		return nil, missing
	}

	return &models.ExtractedSupply{
		Category:          category,
		Name:              name,
		Quantity:          quantity,
		Unit:              unit,
		Condition:         condition,
		Location:          stringField(data, "location"),
		HasTransportation: boolField(data, "hasTransportation"),
		CanDeliver:        boolField(data, "canDeliver"),
		Notes:             stringField(data, "notes"),
		ExpirationDate:    stringField(data, "expirationDate"),
	}, nil
}

// SupplyDescription builds the display name stored on the supply record,
// e.g. "12 cases of Bottled Water (sealed) - Expires: 2026-01-01".
func SupplyDescription(supply *models.ExtractedSupply) string {
	desc := fmt.Sprintf("%s %s of %s", formatQuantity(supply.Quantity), supply.Unit, supply.Name)
	if supply.Condition != "" {
		desc += fmt.Sprintf(" (%s)", supply.Condition)
	}
	if supply.ExpirationDate != "" {
		desc += " - Expires: " + supply.ExpirationDate
	}
	return desc
}

// formatQuantity renders whole quantities without a trailing ".0".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func boolField(data map[string]any, key string) bool {
	v, _ := data[key].(bool)
	return v
}

// numberField coerces a quantity from whatever representation the model sent:
// JSON numbers arrive as float64, but numeric strings show up in practice too.
// Anything non-numeric is rejected rather than persisted as garbage.
func numberField(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
