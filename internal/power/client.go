// Package power fetches daily solar irradiance series from the NASA POWER
// temporal API.
package power

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strconv"
	"time"
)

const (
	// Parameter is the POWER variable fetched: all-sky surface shortwave
	// downward irradiance, kWh/m²/day.
	Parameter = "ALLSKY_SFC_SW_DWN"

	// Sentinel marks a missing daily reading in POWER responses.
	Sentinel = -999.0

	windowDays     = 30
	requestTimeout = 30 * time.Second
)

var (
	// ErrTimeout signals that the upstream request hit the transport timeout.
	ErrTimeout = errors.New("power: request timed out")

	// ErrNoData signals that no valid readings remain after sentinel filtering.
	ErrNoData = errors.New("power: no valid irradiance data")
)

// UpstreamError is a non-success status from the POWER API.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("power: upstream returned status %d", e.Status)
}

// Series is one fetched irradiance window, values ordered by date with
// sentinels already removed.
type Series struct {
	Values []float64
	Start  time.Time
	End    time.Time
}

// Period renders the fetch window in the YYYYMMDD wire format.
func (s Series) Period() string {
	return s.Start.Format("20060102") + " to " + s.End.Format("20060102")
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// DailyIrradiance fetches the trailing 30-day daily series for one
// coordinate. Sentinel entries are dropped; an all-sentinel response is
// ErrNoData.
func (c *Client) DailyIrradiance(ctx context.Context, lat, lon float64) (Series, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -windowDays)

	// Query order mirrors the POWER API examples.
	url := fmt.Sprintf(
		"%s/api/temporal/daily/point?parameters=%s&community=RE&longitude=%s&latitude=%s&start=%s&end=%s&format=JSON",
		c.baseURL, Parameter,
		strconv.FormatFloat(lon, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
		start.Format("20060102"), end.Format("20060102"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Series{}, fmt.Errorf("power: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Series{}, ErrTimeout
		}
		return Series{}, fmt.Errorf("power: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Series{}, &UpstreamError{Status: resp.StatusCode}
	}

	var payload struct {
		Properties struct {
			Parameter map[string]map[string]float64 `json:"parameter"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Series{}, fmt.Errorf("power: decode response: %w", err)
	}

	daily, ok := payload.Properties.Parameter[Parameter]
	if !ok {
		return Series{}, fmt.Errorf("power: response missing parameter %s", Parameter)
	}

	// Object keys decode into a map; restore date order before filtering.
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	values := make([]float64, 0, len(dates))
	for _, d := range dates {
		if v := daily[d]; v != Sentinel {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Series{}, ErrNoData
	}

	return Series{Values: values, Start: start, End: end}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
