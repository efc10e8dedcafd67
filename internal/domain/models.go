package domain

import "time"

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SolarAnalysis is the scored summary of one daily irradiance series.
// Computed per request, never stored.
type SolarAnalysis struct {
	AvgIrradiance     float64 `json:"avg_irradiance"`
	Score             int     `json:"solar_score"`
	Rating            string  `json:"rating"`
	Recommendation    string  `json:"recommendation"`
	ConsistencyScore  float64 `json:"consistency_score"`
	MinIrradiance     float64 `json:"min_irradiance"`
	MaxIrradiance     float64 `json:"max_irradiance"`
	EstAnnualKWhPerKW float64 `json:"estimated_annual_kwh_per_kw"`
}

// SolarReport is the single-point query response body.
type SolarReport struct {
	Location    string     `json:"location"`
	Coordinates Coordinate `json:"coordinates"`
	SolarAnalysis
	DataPoints   int    `json:"data_points"`
	Period       string `json:"period"`
	AnalysisNote string `json:"analysis_note"`
}

// SamplingPoint is one entry of the fixed zone catalog.
type SamplingPoint struct {
	Name      string
	Region    string
	Latitude  float64
	Longitude float64
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Zone is the scored record derived from one sampling point.
type Zone struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Region         string      `json:"region"`
	Classification string      `json:"classification"`
	Color          string      `json:"color"`
	Bounds         BoundingBox `json:"bounds"`
	Center         Coordinate  `json:"center"`
	SolarAnalysis
	GeneratedAt time.Time `json:"generated_at"`
}

type ZoneStatistics struct {
	TotalZones    int       `json:"total_zones"`
	AvgScore      float64   `json:"avg_score"`
	AvgIrradiance float64   `json:"avg_irradiance"`
	MaxScore      int       `json:"max_score"`
	MinScore      int       `json:"min_score"`
	GeneratedAt   time.Time `json:"generated_at"`
	DataSource    string    `json:"data_source"`
}

type ZoneMap struct {
	Zones      []Zone         `json:"zones"`
	Statistics ZoneStatistics `json:"statistics"`
}
