// Package solar turns a daily irradiance series (kWh/m²/day) into a
// suitability score and summary metrics.
package solar

import (
	"errors"
	"math"

	"github.com/solarpal/solarpal-api/internal/domain"
)

const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingLow       = "Low"
)

var (
	// ErrEmptySeries signals a contract violation: scoring an empty series
	// is undefined. Callers filter missing-data sentinels before scoring.
	ErrEmptySeries = errors.New("empty irradiance series")

	// ErrDegenerateSeries signals a series whose mean is zero, for which
	// the consistency metric is undefined.
	ErrDegenerateSeries = errors.New("degenerate irradiance series: zero mean")
)

var recommendations = map[string]string{
	RatingExcellent: "Outstanding location for solar installation. High energy yield expected.",
	RatingGood:      "Suitable for solar installation. Good energy yield expected.",
	RatingFair:      "Moderate potential for solar panels. Consider local factors.",
	RatingLow:       "Limited solar potential. Consider alternative energy sources.",
}

// Score rates a non-empty daily irradiance series. Each band of the mean is
// normalized independently, so the score is monotonic within a band but
// intentionally discontinuous at band edges.
func Score(values []float64) (domain.SolarAnalysis, error) {
	if len(values) == 0 {
		return domain.SolarAnalysis{}, ErrEmptySeries
	}

	var sum float64
	min, max := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return domain.SolarAnalysis{}, ErrDegenerateSeries
	}

	var score int
	var rating string
	switch {
	case mean >= 5.5:
		score = int(math.Round(mean / 6.5 * 100))
		if score > 100 {
			score = 100
		}
		rating = RatingExcellent
	case mean >= 4.5:
		score = int(math.Round(mean / 5.5 * 85))
		rating = RatingGood
	case mean >= 3.5:
		score = int(math.Round(mean / 4.5 * 65))
		rating = RatingFair
	default:
		score = int(math.Round(mean / 3.5 * 40))
		rating = RatingLow
	}
	if score < 0 {
		score = 0
	}

	consistency := 100 - ((max-min)/mean)*50
	if consistency < 0 {
		consistency = 0
	} else if consistency > 100 {
		consistency = 100
	}

	return domain.SolarAnalysis{
		AvgIrradiance:     round2(mean),
		Score:             score,
		Rating:            rating,
		Recommendation:    recommendations[rating],
		ConsistencyScore:  round1(consistency),
		MinIrradiance:     round2(min),
		MaxIrradiance:     round2(max),
		EstAnnualKWhPerKW: math.Round(mean * 365 * 0.85),
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
