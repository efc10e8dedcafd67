package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreGoodBandExample(t *testing.T) {
	a, err := Score([]float64{4.0, 5.0, 6.0})
	require.NoError(t, err)

	assert.Equal(t, 77, a.Score)
	assert.Equal(t, RatingGood, a.Rating)
	assert.Equal(t, "Suitable for solar installation. Good energy yield expected.", a.Recommendation)
	assert.Equal(t, 80.0, a.ConsistencyScore)
	assert.Equal(t, 4.0, a.MinIrradiance)
	assert.Equal(t, 6.0, a.MaxIrradiance)
	assert.Equal(t, 1552.0, a.EstAnnualKWhPerKW)
	assert.Equal(t, 5.0, a.AvgIrradiance)
}

func TestScoreExcellentBand(t *testing.T) {
	a, err := Score([]float64{6.0, 6.0, 6.0})
	require.NoError(t, err)
	assert.Equal(t, RatingExcellent, a.Rating)
	assert.Equal(t, 92, a.Score) // round(6.0/6.5*100)

	// A mean above the reference ceiling caps at 100.
	a, err = Score([]float64{7.0, 7.0})
	require.NoError(t, err)
	assert.Equal(t, 100, a.Score)
}

func TestScoreBandBoundaries(t *testing.T) {
	cases := []struct {
		mean   float64
		score  int
		rating string
	}{
		{5.5, 85, RatingExcellent}, // boundary belongs to the upper band
		{4.5, 70, RatingGood},
		{3.5, 51, RatingFair},
		{3.4, 39, RatingLow},
	}
	for _, tc := range cases {
		a, err := Score([]float64{tc.mean})
		require.NoError(t, err)
		assert.Equal(t, tc.score, a.Score, "mean %v", tc.mean)
		assert.Equal(t, tc.rating, a.Rating, "mean %v", tc.mean)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	for _, series := range [][]float64{
		{0.01},
		{0.0, 0.2},
		{0.0, 0.0, 0.3},
	} {
		a, err := Score(series)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a.Score, 0)
	}
}

func TestConsistencyConstantSeries(t *testing.T) {
	a, err := Score([]float64{5.2, 5.2, 5.2, 5.2})
	require.NoError(t, err)
	assert.Equal(t, 100.0, a.ConsistencyScore)
}

func TestConsistencyClamped(t *testing.T) {
	// Spread of three times the mean drives the raw formula negative.
	a, err := Score([]float64{0.0, 0.0, 30.0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.ConsistencyScore)

	for _, series := range [][]float64{
		{0.1, 10.0},
		{1.0, 2.0, 9.0},
		{4.4, 4.6},
	} {
		a, err := Score(series)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a.ConsistencyScore, 0.0)
		assert.LessOrEqual(t, a.ConsistencyScore, 100.0)
	}
}

func TestScoreDegenerateSeries(t *testing.T) {
	_, err := Score([]float64{0.0, 0.0, 0.0})
	assert.ErrorIs(t, err, ErrDegenerateSeries)
}

func TestScoreEmptySeries(t *testing.T) {
	_, err := Score(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
