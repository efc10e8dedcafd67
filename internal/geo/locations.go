// Package geo maps coordinates to human-readable Philippine location labels.
package geo

import "fmt"

type box struct {
	minLat, maxLat float64
	minLon, maxLon float64
	label          string
}

// Boxes are checked in order; first containing box wins.
var boxes = []box{
	{14.5, 14.8, 120.9, 121.1, "Metro Manila"},
	{10.2, 10.4, 123.8, 124.0, "Cebu City"},
	{7.0, 7.2, 125.5, 125.7, "Davao City"},
	{16.3, 16.5, 120.5, 120.7, "Baguio City"},
}

// Name returns the label of the first bounding box containing the
// coordinate, or a formatted fallback label.
func Name(lat, lon float64) string {
	for _, b := range boxes {
		if lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon {
			return b.label
		}
	}
	return fmt.Sprintf("Philippines (%.2f, %.2f)", lat, lon)
}
