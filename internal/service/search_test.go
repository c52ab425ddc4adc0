package service

import (
	"testing"

	"gazelle/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{29.7604, -95.3698, 29.9277, -95.4069},
		{0, 0, 45, 90},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		require.Equal(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]))
	}
}

func TestDistanceSamePointIsZero(t *testing.T) {
	require.Equal(t, 0.0, Distance(29.7604, -95.3698, 29.7604, -95.3698))
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 69.1 miles on a 3959-mile sphere
	require.Equal(t, 69.1, Distance(0, 0, 1, 0))
}

func TestMapLink(t *testing.T) {
	link := MapLink(29.7522, -95.3578)
	require.Equal(t, "https://www.google.com/maps/search/?api=1&query=29.7522,-95.3578", link)
}

func TestStaticMapURL(t *testing.T) {
	url := StaticMapURL(29.7522, -95.3578, "tok123", 600, 400, 14)
	require.Contains(t, url, "https://api.mapbox.com/styles/v1/mapbox/streets-v12/static/")
	require.Contains(t, url, "pin-l+ff0000(-95.3578,29.7522)")
	require.Contains(t, url, "/-95.3578,29.7522,14/600x400@2x")
	require.Contains(t, url, "access_token=tok123")
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	require.Equal(t,
		"I didn't find any available supplies matching your needs at this time.",
		FormatSearchResults(nil, "en"))
	require.Equal(t,
		"No encontré suministros disponibles que coincidan con sus necesidades en este momento.",
		FormatSearchResults(nil, "es"))
}

func TestFormatSearchResultsEnglish(t *testing.T) {
	distance := 3.2
	out := FormatSearchResults([]dto.SupplySearchResult{
		{
			Name:     "24 bottles of Water (sealed)",
			Location: "Downtown Distribution Center",
			Distance: &distance,
			MapLink:  "https://maps.example/1",
		},
	}, "en")

	require.Contains(t, out, "I found the following available supplies:")
	require.Contains(t, out, "1. 24 bottles of Water (sealed) at Downtown Distribution Center")
	require.Contains(t, out, "3.2 miles away")
	require.Contains(t, out, "View map: https://maps.example/1")
	require.Contains(t, out, "Would you like to reserve any of these supplies?")
}

func TestFormatSearchResultsSpanish(t *testing.T) {
	distance := 5.0
	out := FormatSearchResults([]dto.SupplySearchResult{
		{Name: "Mantas", Location: "Centro Eastside", Distance: &distance},
		{Name: "Agua", Location: "Centro Norte"},
	}, "es")

	require.Contains(t, out, "Encontré los siguientes suministros disponibles:")
	require.Contains(t, out, "1. Mantas en Centro Eastside - 5 millas de distancia")
	require.Contains(t, out, "2. Agua en Centro Norte")
	require.Contains(t, out, "¿Le gustaría reservar alguno de estos suministros?")
}
