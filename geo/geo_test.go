package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/logging"
	"github.com/ayoisaiah/mapty/workout"
)

const ipInfoTestResponse = `{
  "ip": "80.36.233.153",
  "city": "Palma",
  "region": "Balearic Islands",
  "country": "ES",
  "loc": "39.5680,2.6835",
  "timezone": "Europe/Madrid"
}`

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		Loc  string
		Want workout.Coords
		Err  bool
	}{
		{Loc: "39.5680,2.6835", Want: workout.NewCoords(39.568, 2.6835)},
		{Loc: "-33.8688, 151.2093", Want: workout.NewCoords(-33.8688, 151.2093)},
		{Loc: "", Err: true},
		{Loc: "39.5680", Err: true},
		{Loc: "north,south", Err: true},
		{Loc: "91,0", Err: true},
		{Loc: "0,181", Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Loc, func(t *testing.T) {
			got, err := parseLocation(tc.Loc)
			if tc.Err {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.Want.Lat(), got.Lat(), 1e-9)
			assert.InDelta(t, tc.Want.Lng(), got.Lng(), 1e-9)
		})
	}
}

func newTestIPInfo(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *IPInfo {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewIPInfo("", timeout, logging.Discard())

	u, err := url.Parse(server.URL + "/")
	require.NoError(t, err)

	p.client.BaseURL = u

	return p
}

func TestIPInfoLocate(t *testing.T) {
	p := newTestIPInfo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, ipInfoTestResponse)
	}, 5*time.Second)

	coords, err := p.Locate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 39.568, coords.Lat(), 1e-9)
	assert.InDelta(t, 2.6835, coords.Lng(), 1e-9)
}

func TestIPInfoCancelled(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	p := newTestIPInfo(t, func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	}, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Locate(ctx)
	assert.ErrorIs(t, err, errLookup)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	static := New(config.GeolocationConfig{
		Provider:  config.ProviderStatic,
		Latitude:  10,
		Longitude: -10,
	}, logging.Discard())

	coords, err := static.Locate(ctx)
	require.NoError(t, err)
	assert.Equal(t, workout.NewCoords(10, -10), coords)

	none := New(config.GeolocationConfig{Provider: config.ProviderNone}, logging.Discard())

	_, err = none.Locate(ctx)
	assert.ErrorIs(t, err, errNoProvider)

	ip := New(config.GeolocationConfig{
		Provider: config.ProviderIPInfo,
		Timeout:  time.Second,
	}, logging.Discard())
	assert.IsType(t, &IPInfo{}, ip)
}
