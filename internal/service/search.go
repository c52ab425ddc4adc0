package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gazelle/internal/dto"
	"gazelle/internal/knowledge"
)

const SearchSuppliesToolName = "search_available_supplies"

// SupplySearchTool builds the tool definition offered to the model on seeker
// turns.
func SupplySearchTool() *ClaudeTool {
	return &ClaudeTool{
		Name: SearchSuppliesToolName,
		Description: "Searches the database for available supplies that match what the seeker needs. " +
			"Use this tool after understanding what supplies they need. " +
			"Returns matching supplies with locations and distances.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"categories": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "string",
						"enum": knowledge.CategoryNames(),
					},
					"description": "Array of supply categories the seeker needs (can search multiple at once)",
				},
				"zipCode": map[string]any{
					"type":        "string",
					"description": `Seeker's zip code or general location (e.g., "77002", "Houston", "downtown")`,
				},
				"maxDistanceMiles": map[string]any{
					"type":        "number",
					"description": "Maximum distance in miles to search (default: 25 miles)",
				},
			},
			"required": []string{"categories"},
		},
	}
}

const earthRadiusMiles = 3959

// Distance computes the great-circle distance in miles between two points
// using the Haversine formula, rounded to one decimal place. Total over all
// inputs; callers validate coordinate ranges, out-of-range values produce a
// mathematically valid but meaningless result.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// MapLink returns a universal map-search URL for the coordinates. Google Maps
// is used because its search URLs open on any device without a token.
func MapLink(latitude, longitude float64) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v",
		formatCoord(latitude), formatCoord(longitude))
}

// StaticMapURL templates a Mapbox Static Images URL with a single red marker
// pin at the supply location. Pure string assembly; a malformed coordinate
// yields a malformed but non-throwing URL, and the token is not validated.
func StaticMapURL(latitude, longitude float64, token string, width, height, zoom int) string {
	marker := fmt.Sprintf("pin-l+ff0000(%s,%s)", formatCoord(longitude), formatCoord(latitude))
	return fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/mapbox/streets-v12/static/%s/%s,%s,%d/%dx%d@2x?access_token=%s",
		marker, formatCoord(longitude), formatCoord(latitude), zoom, width, height, token,
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSearchResults renders matched supplies as a numbered bilingual list
// with optional distance and map-link suffixes, closed by a reservation
// prompt. An empty result set returns the fixed no-match sentence.
func FormatSearchResults(results []dto.SupplySearchResult, language string) string {
	if len(results) == 0 {
		if language == "es" {
			return "No encontré suministros disponibles que coincidan con sus necesidades en este momento."
		}
		return "I didn't find any available supplies matching your needs at this time."
	}

	header := "I found the following available supplies:"
	footer := "\n\nWould you like to reserve any of these supplies?"
	if language == "es" {
		header = "Encontré los siguientes suministros disponibles:"
		footer = "\n\n¿Le gustaría reservar alguno de estos suministros?"
	}

	lines := make([]string, 0, len(results))
	for i, result := range results {
		var distanceText string
		if result.Distance != nil {
			d := strconv.FormatFloat(*result.Distance, 'f', -1, 64)
			if language == "es" {
				distanceText = fmt.Sprintf(" - %s millas de distancia", d)
			} else {
				distanceText = fmt.Sprintf(" - %s miles away", d)
			}
		}

		var mapText string
		if result.MapLink != "" {
			if language == "es" {
				mapText = "\n   📍 Ver mapa: " + result.MapLink
			} else {
				mapText = "\n   📍 View map: " + result.MapLink
			}
		}

		connector := "at"
		if language == "es" {
			connector = "en"
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s %s%s%s",
			i+1, result.Name, connector, result.Location, distanceText, mapText))
	}

	return header + "\n\n" + strings.Join(lines, "\n") + footer
}
