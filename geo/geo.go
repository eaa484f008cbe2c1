// Package geo provides the position sources used to centre the map
package geo

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ipinfo/go/v2/ipinfo"

	"github.com/ayoisaiah/mapty/internal/apperr"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/workout"
)

var (
	errNoProvider = &apperr.Error{
		Message: "geolocation is disabled",
	}

	errLookup = &apperr.Error{
		Message: "ip geolocation lookup failed",
	}

	errBadLocation = &apperr.Error{
		Message: "unexpected location format: %q",
	}
)

// Static always reports the same position.
type Static struct {
	Coords workout.Coords
}

func (s Static) Locate(_ context.Context) (workout.Coords, error) {
	return s.Coords, nil
}

// Unavailable never produces a position.
type Unavailable struct{}

func (Unavailable) Locate(_ context.Context) (workout.Coords, error) {
	return workout.Coords{}, errNoProvider
}

// IPInfo approximates the position from the public IP address of the
// machine using the ipinfo.io API.
type IPInfo struct {
	client  *ipinfo.Client
	logger  *slog.Logger
	timeout time.Duration
}

// NewIPInfo creates an ipinfo.io backed locator. The token may be empty.
func NewIPInfo(token string, timeout time.Duration, logger *slog.Logger) *IPInfo {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	return &IPInfo{
		client:  ipinfo.NewClient(httpClient, nil, token),
		timeout: timeout,
		logger:  logger,
	}
}

type lookupResult struct {
	err    error
	coords workout.Coords
}

// Locate looks up the current public IP. It returns when the lookup
// completes, the timeout elapses or ctx is cancelled, whichever is first.
func (p *IPInfo) Locate(ctx context.Context) (workout.Coords, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ch := make(chan lookupResult, 1)

	go func() {
		core, err := p.client.GetIPInfo(nil)
		if err != nil {
			ch <- lookupResult{err: errLookup.Wrap(err)}
			return
		}

		p.logger.Debug(
			"ip geolocation",
			slog.String("city", core.City),
			slog.String("country", core.Country),
			slog.String("loc", core.Location),
		)

		coords, err := parseLocation(core.Location)
		ch <- lookupResult{coords: coords, err: err}
	}()

	select {
	case <-ctx.Done():
		return workout.Coords{}, errLookup.Wrap(ctx.Err())
	case res := <-ch:
		return res.coords, res.err
	}
}

// parseLocation parses a "lat,lng" pair.
func parseLocation(loc string) (workout.Coords, error) {
	latStr, lngStr, ok := strings.Cut(loc, ",")
	if !ok {
		return workout.Coords{}, errBadLocation.Fmt(loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return workout.Coords{}, errBadLocation.Fmt(loc)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil || lng < -180 || lng > 180 {
		return workout.Coords{}, errBadLocation.Fmt(loc)
	}

	return workout.NewCoords(lat, lng), nil
}

// Locator is satisfied by every provider in this package.
type Locator interface {
	Locate(ctx context.Context) (workout.Coords, error)
}

// New returns the locator selected in the configuration.
func New(cfg config.GeolocationConfig, logger *slog.Logger) Locator {
	switch cfg.Provider {
	case config.ProviderStatic:
		return Static{Coords: workout.NewCoords(cfg.Latitude, cfg.Longitude)}
	case config.ProviderIPInfo:
		return NewIPInfo(cfg.Token, cfg.Timeout, logger)
	}

	return Unavailable{}
}
