package service

import (
	"context"
	"fmt"

	"github.com/solarpal/solarpal-api/internal/config"
	"github.com/solarpal/solarpal-api/internal/domain"
	"github.com/solarpal/solarpal-api/internal/geo"
	"github.com/solarpal/solarpal-api/internal/power"
	"github.com/solarpal/solarpal-api/internal/solar"
	"github.com/solarpal/solarpal-api/internal/zones"
)

type Services struct {
	Solar *SolarService
	Zones *zones.Aggregator
}

func New() *Services {
	return NewWithClient(power.NewClient(config.PowerBaseURL()))
}

func NewWithClient(client *power.Client) *Services {
	s := &SolarService{power: client}
	return &Services{
		Solar: s,
		Zones: zones.New(s),
	}
}

type SolarService struct {
	power *power.Client
}

// Analyze fetches the trailing irradiance window for one coordinate and
// scores it. Fetch failures pass through untouched so callers can match
// the power error taxonomy.
func (s *SolarService) Analyze(ctx context.Context, lat, lon float64) (domain.SolarAnalysis, error) {
	series, err := s.power.DailyIrradiance(ctx, lat, lon)
	if err != nil {
		return domain.SolarAnalysis{}, err
	}
	return solar.Score(series.Values)
}

// Report builds the full single-point response: analysis plus location
// name, window and data-point metadata.
func (s *SolarService) Report(ctx context.Context, lat, lon float64) (domain.SolarReport, error) {
	series, err := s.power.DailyIrradiance(ctx, lat, lon)
	if err != nil {
		return domain.SolarReport{}, err
	}
	analysis, err := solar.Score(series.Values)
	if err != nil {
		return domain.SolarReport{}, err
	}
	return domain.SolarReport{
		Location:      geo.Name(lat, lon),
		Coordinates:   domain.Coordinate{Latitude: lat, Longitude: lon},
		SolarAnalysis: analysis,
		DataPoints:    len(series.Values),
		Period:        series.Period(),
		AnalysisNote:  fmt.Sprintf("Solar analysis for precise coordinates: %.6f°N, %.6f°E", lat, lon),
	}, nil
}
