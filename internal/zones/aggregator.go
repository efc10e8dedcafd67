// Package zones builds the solar zone map by scoring every catalog point
// concurrently and merging the survivors.
package zones

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/solarpal/solarpal-api/internal/domain"
)

const (
	dataSource   = "NASA POWER (ALLSKY_SFC_SW_DWN)"
	batchTimeout = 45 * time.Second

	// Zone bounds extend this many degrees from the sampling point.
	boxRadius = 0.5
)

// ErrAllFailed signals that no sampling point could be scored.
var ErrAllFailed = errors.New("zones: all sampling points failed")

// PointAnalyzer scores a single coordinate.
type PointAnalyzer interface {
	Analyze(ctx context.Context, lat, lon float64) (domain.SolarAnalysis, error)
}

type Aggregator struct {
	analyzer PointAnalyzer
	catalog  []domain.SamplingPoint
}

func New(analyzer PointAnalyzer) *Aggregator {
	return &Aggregator{analyzer: analyzer, catalog: Catalog}
}

// Build fetches and scores every catalog point concurrently. A failed point
// is logged and dropped; only zero successes is an error. Zone order follows
// catalog order regardless of completion order.
func (a *Aggregator) Build(ctx context.Context) (*domain.ZoneMap, error) {
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	// One result slot per point; slots are written by exactly one goroutine.
	results := make([]*domain.SolarAnalysis, len(a.catalog))
	var wg sync.WaitGroup
	for i, pt := range a.catalog {
		wg.Add(1)
		go func(i int, pt domain.SamplingPoint) {
			defer wg.Done()
			analysis, err := a.analyzer.Analyze(ctx, pt.Latitude, pt.Longitude)
			if err != nil {
				log.Warn().Err(err).Str("point", pt.Name).Msg("sampling point skipped")
				return
			}
			results[i] = &analysis
		}(i, pt)
	}
	wg.Wait()

	now := time.Now()
	out := make([]domain.Zone, 0, len(a.catalog))
	var scoreSum, irrSum float64
	maxScore := math.MinInt
	minScore := math.MaxInt
	for i, pt := range a.catalog {
		r := results[i]
		if r == nil {
			continue
		}
		class, color := classify(r.Score)
		out = append(out, domain.Zone{
			ID:             zoneID(pt.Region),
			Name:           pt.Name,
			Region:         pt.Region,
			Classification: class,
			Color:          color,
			Bounds: domain.BoundingBox{
				MinLat: pt.Latitude - boxRadius,
				MaxLat: pt.Latitude + boxRadius,
				MinLon: pt.Longitude - boxRadius,
				MaxLon: pt.Longitude + boxRadius,
			},
			Center:        domain.Coordinate{Latitude: pt.Latitude, Longitude: pt.Longitude},
			SolarAnalysis: *r,
			GeneratedAt:   now,
		})
		scoreSum += float64(r.Score)
		irrSum += r.AvgIrradiance
		if r.Score > maxScore {
			maxScore = r.Score
		}
		if r.Score < minScore {
			minScore = r.Score
		}
	}
	if len(out) == 0 {
		return nil, ErrAllFailed
	}

	n := float64(len(out))
	return &domain.ZoneMap{
		Zones: out,
		Statistics: domain.ZoneStatistics{
			TotalZones:    len(out),
			AvgScore:      math.Round(scoreSum/n*10) / 10,
			AvgIrradiance: math.Round(irrSum/n*100) / 100,
			MaxScore:      maxScore,
			MinScore:      minScore,
			GeneratedAt:   now,
			DataSource:    dataSource,
		},
	}, nil
}

func classify(score int) (class, color string) {
	switch {
	case score >= 85:
		return "excellent", "#16a34a"
	case score >= 70:
		return "good", "#84cc16"
	case score >= 55:
		return "fair", "#facc15"
	default:
		return "low", "#f87171"
	}
}

func zoneID(region string) string {
	return "zone-" + strings.ReplaceAll(strings.ToLower(region), " ", "-")
}
