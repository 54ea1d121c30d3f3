package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

// osrmProfiles maps transport modes to OSRM routing profiles. Transit has
// no OSRM profile and is handled by the estimator fallback.
var osrmProfiles = map[models.TransportMode]string{
	models.ModeCar:     "driving",
	models.ModeWalking: "foot",
	models.ModeCycling: "bike",
}

// OSRMProvider retrieves routed travel durations from an OSRM server
type OSRMProvider struct {
	baseURL string
	client  *http.Client
}

// NewOSRMProvider creates a new OSRM routing provider
func NewOSRMProvider(config *config.TransportConfig) *OSRMProvider {
	return &OSRMProvider{
		baseURL: config.OSRMBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ProviderName identifies this provider in logs and metrics
func (p *OSRMProvider) ProviderName() string {
	return "OSRM"
}

// ETA retrieves the routed travel duration from origin to the airport
func (p *OSRMProvider) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	if !origin.IsValid() {
		return nil, errors.NewLocationUnavailableError("origin location is not available")
	}
	if !dest.Coordinate.IsValid() {
		return nil, errors.NewAirportNotFoundError(dest.Code)
	}

	profile, ok := osrmProfiles[mode]
	if !ok {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("no routing profile for transport mode %q", mode), nil)
	}

	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		p.baseURL, profile,
		origin.Longitude, origin.Latitude,
		dest.Coordinate.Longitude, dest.Coordinate.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to create routing request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// Cancellation must reach the caller unwrapped
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NewExternalAPIError("failed to get route", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			// Ignore close error as it's not critical for the main operation
			_ = closeErr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("routing API returned status code %d", resp.StatusCode), nil)
	}

	var route routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode routing response", err)
	}

	if route.Code != "Ok" {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("routing API returned code %q", route.Code), nil)
	}
	if len(route.Routes) == 0 {
		return nil, errors.NewExternalAPIError("routing API returned no routes", nil)
	}

	duration := time.Duration(route.Routes[0].Duration * float64(time.Second))
	return &ETA{Duration: duration, Estimated: false}, nil
}

type routeResponse struct {
	Code   string  `json:"code"`
	Routes []route `json:"routes"`
}

type route struct {
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
}
