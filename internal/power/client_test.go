package power

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodPayload = `{"properties":{"parameter":{"ALLSKY_SFC_SW_DWN":` +
	`{"20250103":6.1,"20250101":5.0,"20250102":-999.0,"20250104":5.5}}}}`

func TestDailyIrradianceFiltersSentinels(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/api/temporal/daily/point", r.URL.Path)
		fmt.Fprint(w, goodPayload)
	}))
	defer srv.Close()

	series, err := NewClient(srv.URL).DailyIrradiance(context.Background(), 14.6, 121.0)
	require.NoError(t, err)

	// Sentinel dropped, remaining values in date order.
	assert.Equal(t, []float64{5.0, 6.1, 5.5}, series.Values)
	assert.Len(t, series.Period(), len("20250101 to 20250131"))

	assert.Equal(t, []string{Parameter}, gotQuery["parameters"])
	assert.Equal(t, []string{"RE"}, gotQuery["community"])
	assert.Equal(t, []string{"JSON"}, gotQuery["format"])
	assert.Equal(t, []string{"14.6"}, gotQuery["latitude"])
	assert.Equal(t, []string{"121"}, gotQuery["longitude"])
	require.Len(t, gotQuery["start"], 1)
	require.Len(t, gotQuery["end"], 1)
	assert.Len(t, gotQuery["start"][0], 8)
	assert.Len(t, gotQuery["end"][0], 8)
}

func TestDailyIrradianceAllSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties":{"parameter":{"ALLSKY_SFC_SW_DWN":{"20250101":-999.0,"20250102":-999.0}}}}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DailyIrradiance(context.Background(), 14.6, 121.0)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDailyIrradianceUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DailyIrradiance(context.Background(), 14.6, 121.0)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
}

func TestDailyIrradianceBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DailyIrradiance(context.Background(), 14.6, 121.0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestDailyIrradianceMissingParameter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties":{"parameter":{}}}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DailyIrradiance(context.Background(), 14.6, 121.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), Parameter)
}

func TestDailyIrradianceContextTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodPayload)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DailyIrradiance(ctx, 14.6, 121.0)
	require.Error(t, err)
}
